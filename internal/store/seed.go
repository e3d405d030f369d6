package store

import (
	"github.com/bookora/scheduler-api/internal/models"
)

// seedDemoData popula o backend em memória com um estúdio de exemplo.
// Efeito colateral de boot, ligado por SEED_DEMO_DATA=true; o motor de
// slots nunca sabe que os dados são de demonstração.
func (m *Memory) seedDemoData() {
	biz := models.Business{
		ID:       "demo-business",
		Name:     "Luna Beauty Studio",
		Slug:     "luna-beauty",
		Email:    "hello@lunabeauty.example",
		Phone:    "+1 555 0100",
		Address:  "123 Main St, Brooklyn, NY",
		Timezone: "America/New_York",
		About:    "Hair, nails and skincare in the heart of Brooklyn.",
	}
	m.businesses = append(m.businesses, biz)

	m.services = append(m.services,
		models.Service{
			ID:          "demo-service-haircut",
			BusinessID:  biz.ID,
			Name:        "Signature Haircut",
			Description: "Cut, wash and style.",
			DurationMin: 60,
			Price:       85,
			Active:      true,
			Category:    "hair",
		},
		models.Service{
			ID:          "demo-service-manicure",
			BusinessID:  biz.ID,
			Name:        "Gel Manicure",
			DurationMin: 45,
			Price:       55,
			Active:      true,
			Category:    "nails",
		},
	)

	m.team = append(m.team,
		models.TeamMember{
			ID:         "demo-member-ava",
			BusinessID: biz.ID,
			Name:       "Ava Reyes",
			Role:       "Stylist",
			Active:     true,
		},
	)

	// Seg–sex 09:00–17:00, sábado 10:00–14:00, slots de 30 min.
	for dow := 1; dow <= 5; dow++ {
		m.availability = append(m.availability, models.AvailabilitySlot{
			ID:              "demo-window-" + string(rune('0'+dow)),
			BusinessID:      biz.ID,
			DayOfWeek:       dow,
			StartTime:       "09:00",
			EndTime:         "17:00",
			SlotDurationMin: 30,
			Active:          true,
		})
	}
	m.availability = append(m.availability, models.AvailabilitySlot{
		ID:              "demo-window-6",
		BusinessID:      biz.ID,
		DayOfWeek:       6,
		StartTime:       "10:00",
		EndTime:         "14:00",
		SlotDurationMin: 30,
		Active:          true,
	})

	m.websites = append(m.websites, models.WebsiteConfig{
		ID:           "demo-website",
		BusinessID:   biz.ID,
		Template:     "classic",
		PrimaryColor: "#7c3aed",
		HeroTitle:    "Luna Beauty Studio",
		HeroSubtitle: "Book your next appointment online.",
		ShowPrices:   true,
		Published:    true,
	})
}
