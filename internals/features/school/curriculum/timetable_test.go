package curriculum

import (
	"reflect"
	"testing"
)

func TestMinutesFor(t *testing.T) {
	tests := []struct {
		name   string
		day    string
		period string
		want   int
	}{
		{name: "koma 1 = 40 menit", day: "月", period: "1校時", want: 40},
		{name: "koma 5 = 40 menit", day: "土", period: "5校時", want: 40},
		{name: "6校時 = 45 menit", day: "水", period: "6校時", want: 45},
		{name: "学校裁量 hari aktif", day: "月", period: "学校裁量", want: 45},
		{name: "学校裁量 金", day: "金", period: "学校裁量", want: 45},
		{name: "学校裁量 水 = tidak ada", day: "水", period: "学校裁量", want: 0},
		{name: "学校裁量 土 = tidak ada", day: "土", period: "学校裁量", want: 0},
		{name: "hari tidak dikenal", day: "日", period: "1校時", want: 0},
		{name: "koma tidak dikenal", day: "月", period: "7校時", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesFor(tt.day, tt.period); got != tt.want {
				t.Errorf("MinutesFor(%s, %s) = %d, want %d", tt.day, tt.period, got, tt.want)
			}
		})
	}
}

func TestActivePeriods(t *testing.T) {
	// semua koma aktif: 学校裁量 punya 4 hari dengan menit > 0
	want := []string{"1校時", "2校時", "3校時", "4校時", "5校時", "学校裁量", "6校時"}
	if got := ActivePeriods(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActivePeriods() = %v, want %v", got, want)
	}
}

func TestMinutes45(t *testing.T) {
	if got := Minutes45(45); got != 1 {
		t.Errorf("Minutes45(45) = %v, want 1", got)
	}
	if got := Minutes45(40); got != float64(40)/45 {
		t.Errorf("Minutes45(40) = %v", got)
	}
	if got := Minutes45(0); got != 0 {
		t.Errorf("Minutes45(0) = %v, want 0", got)
	}
}
