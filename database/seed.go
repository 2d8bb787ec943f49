package database

import (
	"gorm.io/gorm"

	"github.com/Abhishek-ak7/overseas-site-sub002/models"
)

// Seed inserts the CMS defaults the public site expects on a fresh database.
// Lookups go through the natural key only, so restarts stay idempotent even
// after an admin edits a seeded row.
func Seed(db *gorm.DB) error {
	journeySteps := []models.JourneyStep{
		{StepNumber: 1, Title: "Free Counselling", Description: "Meet our advisors and shortlist destinations that match your profile.", Icon: "chat"},
		{StepNumber: 2, Title: "Test Preparation", Description: "Prepare for IELTS, TOEFL or PTE with our in-house trainers.", Icon: "book"},
		{StepNumber: 3, Title: "University Applications", Description: "We draft, review and submit applications to your shortlisted universities.", Icon: "university"},
		{StepNumber: 4, Title: "Visa & Departure", Description: "Visa filing, interview prep and pre-departure briefing.", Icon: "plane"},
	}
	for _, step := range journeySteps {
		if err := db.Where(models.JourneyStep{StepNumber: step.StepNumber}).Attrs(step).FirstOrCreate(&models.JourneyStep{}).Error; err != nil {
			return err
		}
	}

	statistics := []models.Statistic{
		{Label: "Students Placed", Value: 5000, Suffix: "+", OrderIndex: 1},
		{Label: "Partner Universities", Value: 120, Suffix: "+", OrderIndex: 2},
		{Label: "Visa Success Rate", Value: 98, Suffix: "%", OrderIndex: 3},
		{Label: "Countries", Value: 12, Suffix: "", OrderIndex: 4},
	}
	for _, stat := range statistics {
		if err := db.Where(models.Statistic{Label: stat.Label}).Attrs(stat).FirstOrCreate(&models.Statistic{}).Error; err != nil {
			return err
		}
	}

	home := models.Page{
		Slug:        "home",
		Title:       "Study Abroad With Confidence",
		Sections:    []byte(`[{"type":"hero","heading":"Your gateway to global education","subheading":"Counselling, test prep, admissions and visas under one roof","cta":{"label":"Book a Free Consultation","href":"/appointment"}}]`),
		IsPublished: true,
	}
	if err := db.Where(models.Page{Slug: home.Slug}).Attrs(home).FirstOrCreate(&models.Page{}).Error; err != nil {
		return err
	}

	return nil
}
