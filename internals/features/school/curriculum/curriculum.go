// internals/features/school/curriculum/curriculum.go
package curriculum

import "errors"

var (
	ErrUnknownGrade   = errors.New("grade tidak dikenal")
	ErrUnknownSubject = errors.New("mapel tidak dikenal pada grade tersebut")
)

// SubjectBudget: satu mapel + standar tahunan dalam satuan 45 menit.
type SubjectBudget struct {
	Subject  string  `json:"subject"`
	Standard float64 `json:"standard"`
}

/* =========================================================
   STANDAR TAHUNAN PER GRADE (satuan koma 45 menit)
   Urutan entri = urutan tampil/iterasi, JANGAN di-sort.
   ========================================================= */

var gradeOrder = []string{"1年", "2年", "3年", "4年", "5年", "6年"}

var standardHours = map[string][]SubjectBudget{
	"1年": {
		{"国語", 306}, {"算数", 140}, {"生活", 102}, {"音楽", 68}, {"図工", 68},
		{"体育", 102}, {"道徳", 34}, {"特活", 34}, {"学校行事", 0}, {"読書科", 70},
		{"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
	"2年": {
		{"国語", 280}, {"算数", 140}, {"生活", 102}, {"音楽", 68}, {"図工", 68},
		{"体育", 102}, {"道徳", 35}, {"特活", 35}, {"学校行事", 0}, {"読書科", 70},
		{"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
	"3年": {
		{"国語", 210}, {"社会", 70}, {"算数", 175}, {"理科", 70}, {"音楽", 50},
		{"図工", 50}, {"体育", 105}, {"道徳", 35}, {"特活", 35}, {"外国語活動", 35},
		{"総合的な学習の時間", 70}, {"学校行事", 0}, {"読書科", 70},
		{"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
	"4年": {
		{"国語", 175}, {"社会", 105}, {"算数", 175}, {"理科", 105}, {"音楽", 50},
		{"図工", 50}, {"体育", 105}, {"道徳", 35}, {"特活", 35}, {"外国語活動", 35},
		{"総合的な学習の時間", 70}, {"家庭科", 0}, {"クラブ", 10}, {"学校行事", 0},
		{"読書科", 70}, {"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
	"5年": {
		{"国語", 175}, {"社会", 105}, {"算数", 175}, {"理科", 105}, {"音楽", 45},
		{"図工", 45}, {"家庭科", 70}, {"体育", 90}, {"道徳", 35}, {"特活", 35},
		{"外国語", 70}, {"総合的な学習の時間", 70}, {"クラブ", 10}, {"委員会", 10},
		{"学校行事", 0}, {"読書科", 70}, {"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
	"6年": {
		{"国語", 175}, {"社会", 105}, {"算数", 140}, {"理科", 105}, {"音楽", 45},
		{"図工", 45}, {"家庭科", 70}, {"体育", 90}, {"道徳", 35}, {"特活", 35},
		{"外国語", 70}, {"総合的な学習の時間", 70}, {"クラブ", 10}, {"委員会", 10},
		{"学校行事", 0}, {"読書科", 70}, {"学校裁量（学力向上）", 35}, {"学校裁量（探究）", 35},
	},
}

// Grades mengembalikan daftar grade sesuai urutan definisi (1年..6年).
func Grades() []string {
	out := make([]string, len(gradeOrder))
	copy(out, gradeOrder)
	return out
}

// KnownGrade: cek cepat tanpa error.
func KnownGrade(grade string) bool {
	_, ok := standardHours[grade]
	return ok
}

// Budgets mengembalikan (mapel, standar) untuk satu grade, urutan definisi.
func Budgets(grade string) ([]SubjectBudget, error) {
	rows, ok := standardHours[grade]
	if !ok {
		return nil, ErrUnknownGrade
	}
	out := make([]SubjectBudget, len(rows))
	copy(out, rows)
	return out, nil
}

// SubjectsFor mengembalikan nama mapel untuk satu grade, urutan definisi.
func SubjectsFor(grade string) ([]string, error) {
	rows, ok := standardHours[grade]
	if !ok {
		return nil, ErrUnknownGrade
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Subject)
	}
	return out, nil
}

// BudgetFor mengembalikan standar tahunan (45 menit) untuk (grade, mapel).
func BudgetFor(grade, subject string) (float64, error) {
	rows, ok := standardHours[grade]
	if !ok {
		return 0, ErrUnknownGrade
	}
	for _, r := range rows {
		if r.Subject == subject {
			return r.Standard, nil
		}
	}
	return 0, ErrUnknownSubject
}

// HasSubject: apakah mapel ditawarkan di grade tersebut.
func HasSubject(grade, subject string) bool {
	rows, ok := standardHours[grade]
	if !ok {
		return false
	}
	for _, r := range rows {
		if r.Subject == subject {
			return true
		}
	}
	return false
}
