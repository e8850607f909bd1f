// internals/features/school/weekly_plans/service/aggregator.go
package service

import (
	"strings"

	curriculum "shuan_backend/internals/features/school/curriculum"
	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

/* =========================================================
   AGREGATOR GRID → MENIT PER (GRADE, MAPEL)
   Fungsi murni; UI boleh memanggil sesering apa pun.
   Dua kebijakan:
   - homeroom  : semua slot dihitung ke baseGrade
   - specialist: grade ditentukan dari label kelas per slot
     ("4-1" → "4年"), fallback ke baseGrade
   Slot dengan menit 0, mapel kosong/（空欄）, atau mapel yang
   tidak ditawarkan di grade hasil resolusi → dilewati, bukan
   digagalkan (entri parsial saat mengedit itu wajar).
   ========================================================= */

// InferGrade: ambil digit pertama dari label kelas → "<digit>年".
// Label kosong / tanpa digit / grade hasil parse tak ada di katalog →
// fallback ke baseGrade.
func InferGrade(classLabel, baseGrade string) string {
	for _, r := range classLabel {
		if r >= '0' && r <= '9' {
			g := string(r) + "年"
			if curriculum.KnownGrade(g) {
				return g
			}
			break
		}
	}
	return baseGrade
}

// Aggregate menghitung total menit per grade per mapel dari satu grid.
// baseGrade wajib ada di katalog (curriculum.ErrUnknownGrade kalau tidak).
func Aggregate(grid planModel.PlanGrid, baseGrade, workMode string) (planModel.SubjectMinutes, error) {
	if !curriculum.KnownGrade(baseGrade) {
		return nil, curriculum.ErrUnknownGrade
	}

	out := planModel.SubjectMinutes{}
	for _, day := range curriculum.Days() {
		row, ok := grid[day]
		if !ok {
			continue
		}
		for _, period := range curriculum.Periods() {
			minutes := curriculum.MinutesFor(day, period)
			if minutes <= 0 {
				// slot nonaktif tidak pernah berkontribusi, apa pun isinya
				continue
			}
			cell, ok := row[period]
			if !ok {
				continue
			}
			subject := strings.TrimSpace(cell.Subject)
			if subject == "" || subject == curriculum.BlankSubject {
				continue
			}

			grade := baseGrade
			if workMode == planModel.WorkModeSpecialist {
				grade = InferGrade(cell.Class, baseGrade)
			}
			if !curriculum.HasSubject(grade, subject) {
				// mapel tidak ditawarkan di grade tsb → dilewati
				continue
			}

			if out[grade] == nil {
				out[grade] = map[string]int{}
			}
			out[grade][subject] += minutes
		}
	}
	return out, nil
}
