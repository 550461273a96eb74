// Seed script for development accounts and sample workflow data
// cmd/seed/main.go
package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"sita-api/config"
	"sita-api/models"
	"sita-api/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	if err := models.AutoMigrate(config.DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}

	nim1 := "12345678"
	nim2 := "87654321"

	users := []models.User{
		{Username: "dosen1", Password: hashed, Role: models.RoleLecturer, Name: "Dr. Budi Santoso"},
		{Username: "mahasiswa1", Password: hashed, Role: models.RoleStudent, Name: "John Doe", NIM: &nim1},
		{Username: "mahasiswa2", Password: hashed, Role: models.RoleStudent, Name: "Jane Smith", NIM: &nim2},
	}

	for i := range users {
		var existing models.User
		err := config.DB.Where("username = ?", users[i].Username).First(&existing).Error
		if err == nil {
			log.Printf("User %s already exists, skipping\n", users[i].Username)
			users[i] = existing
			continue
		}
		if err := config.DB.Create(&users[i]).Error; err != nil {
			log.Fatal("Failed to create user:", err)
		}
		log.Printf("Created user %s (%s)\n", users[i].Username, users[i].Role)
	}

	student1 := users[1]
	student2 := users[2]

	seedWorkflow(student1, "Sistem Rekomendasi Berbasis Machine Learning")
	seedWorkflow(student2, "Analisis Sentimen Media Sosial")
	seedLogbook(student2)

	log.Println("Seeding completed!")
}

// seedWorkflow creates an approved thesis, an approved seminar and a pending
// defense submission for the given student.
func seedWorkflow(student models.User, title string) {
	var count int64
	config.DB.Model(&models.Thesis{}).Where("student_id = ?", student.ID).Count(&count)
	if count > 0 {
		log.Printf("Workflow data for %s already exists, skipping\n", student.Username)
		return
	}

	now := time.Now()
	approval := now.AddDate(0, 0, -30)

	thesis := models.Thesis{
		StudentID:      student.ID,
		Title:          title,
		ResearchObject: "Data transaksi dan interaksi pengguna",
		Methodology:    "Studi literatur, eksperimen dan evaluasi model",
		AttachmentFile: "thesis/seed-" + student.Username + ".pdf",
		Status:         models.StatusApproved,
		ApprovalDate:   &approval,
	}
	if err := config.DB.Create(&thesis).Error; err != nil {
		log.Fatal("Failed to create thesis submission:", err)
	}

	seminarDate := now.AddDate(0, 0, -14)
	seminar := models.Seminar{
		StudentID:      student.ID,
		ThesisID:       thesis.ID,
		Title:          thesis.Title,
		ResearchObject: thesis.ResearchObject,
		Methodology:    thesis.Methodology,
		Status:         models.StatusApproved,
		SeminarDate:    &seminarDate,
	}
	if err := config.DB.Create(&seminar).Error; err != nil {
		log.Fatal("Failed to create seminar submission:", err)
	}

	defense := models.Defense{
		StudentID:      student.ID,
		SeminarID:      seminar.ID,
		Title:          thesis.Title,
		ResearchObject: thesis.ResearchObject,
		Methodology:    thesis.Methodology,
		Status:         models.StatusPending,
	}
	if err := config.DB.Create(&defense).Error; err != nil {
		log.Fatal("Failed to create defense submission:", err)
	}

	log.Printf("Created workflow submissions for %s\n", student.Username)
}

// seedLogbook adds a couple of unlocked guidance entries.
func seedLogbook(student models.User) {
	var count int64
	config.DB.Model(&models.Logbook{}).Where("student_id = ?", student.ID).Count(&count)
	if count > 0 {
		log.Printf("Logbook entries for %s already exist, skipping\n", student.Username)
		return
	}

	entries := []models.Logbook{
		{
			StudentID: student.ID,
			Date:      time.Now().AddDate(0, 0, -7),
			Activity:  "Konsultasi bab 1 dan rumusan masalah dengan dosen pembimbing",
		},
		{
			StudentID: student.ID,
			Date:      time.Now().AddDate(0, 0, -2),
			Activity:  "Revisi tinjauan pustaka dan penyusunan metodologi penelitian",
		},
	}

	for i := range entries {
		if err := config.DB.Create(&entries[i]).Error; err != nil {
			log.Fatal("Failed to create logbook entry:", err)
		}
	}

	log.Printf("Created %d logbook entries for %s\n", len(entries), student.Username)
}
