// internals/features/school/curriculum/timetable.go
package curriculum

/* =========================================================
   KERANGKA JADWAL MINGGUAN
   Baris = koma (校時), kolom = hari. Menit per koma dihitung
   sekali dari aturan sederhana:
   - koma ke-1..5        → 40 menit
   - 6校時               → 45 menit
   - 学校裁量            → 45 menit hanya 月/火/木/金, sisanya 0
     (kalender sekolah: separuh minggu tidak punya koma ini)
   ========================================================= */

// BlankSubject: sentinel sel kosong pada grid (ikut format asli).
const BlankSubject = "（空欄）"

// DiscretionaryPeriod: koma kebijakan sekolah (学校裁量).
const DiscretionaryPeriod = "学校裁量"

var days = []string{"月", "火", "水", "木", "金", "土"}

var periods = []string{"1校時", "2校時", "3校時", "4校時", "5校時", DiscretionaryPeriod, "6校時"}

var discretionaryDays = map[string]bool{"月": true, "火": true, "木": true, "金": true}

// periodMinutes[day][period], dihitung sekali saat init.
var periodMinutes = buildPeriodMinutes()

func buildPeriodMinutes() map[string]map[string]int {
	table := make(map[string]map[string]int, len(days))
	for _, day := range days {
		row := make(map[string]int, len(periods))
		for i, period := range periods {
			switch {
			case period == DiscretionaryPeriod:
				if discretionaryDays[day] {
					row[period] = 45
				} else {
					row[period] = 0
				}
			case i < 5:
				row[period] = 40
			default:
				row[period] = 45
			}
		}
		table[day] = row
	}
	return table
}

// Days: urutan hari 月..土.
func Days() []string {
	out := make([]string, len(days))
	copy(out, days)
	return out
}

// Periods: semua koma, urutan tampil.
func Periods() []string {
	out := make([]string, len(periods))
	copy(out, periods)
	return out
}

// MinutesFor: menit untuk (hari, koma). 0 = slot tidak ada / tidak dikenal.
func MinutesFor(day, period string) int {
	row, ok := periodMinutes[day]
	if !ok {
		return 0
	}
	return row[period]
}

// ActivePeriods: koma yang punya minimal satu hari dengan menit > 0.
// Dipakai untuk menyembunyikan baris yang sepenuhnya nonaktif.
func ActivePeriods() []string {
	out := make([]string, 0, len(periods))
	for _, period := range periods {
		for _, day := range days {
			if periodMinutes[day][period] > 0 {
				out = append(out, period)
				break
			}
		}
	}
	return out
}

// Minutes45 konversi menit mentah ke satuan koma 45 menit (tanpa pembulatan).
func Minutes45(minutes int) float64 {
	return float64(minutes) / 45
}
