package services

import (
	"fmt"
	"time"
)

// Notification titles, matching the domain language the mobile client
// displays verbatim.
const (
	titleThesisApproved  = "Pengajuan TA Disetujui"
	titleThesisRejected  = "Pengajuan TA Ditolak"
	titleSeminarApproved = "Pengajuan Seminar Disetujui"
	titleSeminarRejected = "Pengajuan Seminar Ditolak"
	titleDefenseApproved = "Pengajuan Sidang Disetujui"
	titleDefenseRejected = "Pengajuan Sidang Ditolak"
	titleLogbookLocked   = "Logbook Dikunci"
	titleLogbookNote     = "Catatan Logbook Baru"

	messageLogbookLocked = "Logbook Anda telah dikunci oleh dosen pembimbing."
	messageLogbookNote   = "Dosen pembimbing telah memberikan catatan pada logbook Anda."
)

func formatScheduleDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func thesisApprovedMessage(approvalDate time.Time) string {
	return fmt.Sprintf("Pengajuan TA Anda telah disetujui pada %s. Silakan lanjut ke tahap seminar.",
		formatScheduleDate(approvalDate))
}

func thesisRejectedMessage(reason string) string {
	return fmt.Sprintf("Pengajuan TA Anda ditolak dengan alasan: %s", reason)
}

func seminarApprovedMessage(seminarDate time.Time) string {
	return fmt.Sprintf("Pengajuan seminar Anda telah disetujui dengan jadwal: %s",
		formatScheduleDate(seminarDate))
}

func seminarRejectedMessage(reason string, suggestedDate *time.Time) string {
	message := fmt.Sprintf("Pengajuan seminar Anda ditolak dengan alasan: %s", reason)
	if suggestedDate != nil {
		message += fmt.Sprintf(". Saran jadwal: %s", formatScheduleDate(*suggestedDate))
	}
	return message
}

func defenseApprovedMessage(defenseDate time.Time) string {
	return fmt.Sprintf("Pengajuan sidang Anda telah disetujui dengan jadwal: %s",
		formatScheduleDate(defenseDate))
}

func defenseRejectedMessage(reason string, suggestedDate *time.Time) string {
	message := fmt.Sprintf("Pengajuan sidang Anda ditolak dengan alasan: %s", reason)
	if suggestedDate != nil {
		message += fmt.Sprintf(". Saran jadwal: %s", formatScheduleDate(*suggestedDate))
	}
	return message
}
