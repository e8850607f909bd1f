package service

import (
	"errors"
	"reflect"
	"testing"

	curriculum "shuan_backend/internals/features/school/curriculum"
	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

func TestInferGrade(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		baseGrade string
		want      string
	}{
		{name: "label 3-2 → 3年", label: "3-2", baseGrade: "1年", want: "3年"},
		{name: "label 4-1 → 4年", label: "4-1", baseGrade: "3年", want: "4年"},
		{name: "label kosong → base", label: "", baseGrade: "2年", want: "2年"},
		{name: "tanpa digit → base", label: "ひまわり", baseGrade: "5年", want: "5年"},
		{name: "digit di luar katalog → base", label: "7-1", baseGrade: "6年", want: "6年"},
		{name: "digit 0 → base", label: "0-1", baseGrade: "4年", want: "4年"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferGrade(tt.label, tt.baseGrade); got != tt.want {
				t.Errorf("InferGrade(%q, %q) = %q, want %q", tt.label, tt.baseGrade, got, tt.want)
			}
		})
	}
}

func TestAggregateSimplePolicy(t *testing.T) {
	// Skenario A: hanya 月/1校時 = 国語 → {"1年": {"国語": 40}}
	grid := planModel.PlanGrid{
		"月": {"1校時": {Subject: "国語", Content: "説明文"}},
	}
	got, err := Aggregate(grid, "1年", planModel.WorkModeHomeroom)
	if err != nil {
		t.Fatal(err)
	}
	want := planModel.SubjectMinutes{"1年": {"国語": 40}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateSpecialistRoutesByClassLabel(t *testing.T) {
	// Skenario B: guru 専科 base 3年, label kelas 4-1 → menit masuk ke 4年
	grid := planModel.PlanGrid{
		"月": {"1校時": {Class: "4-1", Subject: "音楽"}},
		"火": {"2校時": {Class: "", Subject: "音楽"}}, // tanpa label → base
	}
	got, err := Aggregate(grid, "3年", planModel.WorkModeSpecialist)
	if err != nil {
		t.Fatal(err)
	}
	want := planModel.SubjectMinutes{
		"4年": {"音楽": 40},
		"3年": {"音楽": 40},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateSkipsBlankAndInactive(t *testing.T) {
	grid := planModel.PlanGrid{
		"月": {
			"1校時": {Subject: curriculum.BlankSubject},
			"2校時": {Subject: ""},
			"3校時": {Subject: "算数"},
		},
		// 水 tidak punya 学校裁量 (0 menit) → isinya tidak boleh dihitung
		"水": {"学校裁量": {Subject: "算数", Content: "ドリル"}},
		"土": {"学校裁量": {Subject: "国語"}},
	}
	got, err := Aggregate(grid, "2年", planModel.WorkModeHomeroom)
	if err != nil {
		t.Fatal(err)
	}
	want := planModel.SubjectMinutes{"2年": {"算数": 40}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateSkipsSubjectNotInResolvedGrade(t *testing.T) {
	// 外国語 tidak ada di 1年 → slot dilewati, bukan error
	grid := planModel.PlanGrid{
		"月": {"1校時": {Subject: "外国語"}, "2校時": {Subject: "生活"}},
	}
	got, err := Aggregate(grid, "1年", planModel.WorkModeHomeroom)
	if err != nil {
		t.Fatal(err)
	}
	want := planModel.SubjectMinutes{"1年": {"生活": 40}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %v, want %v", got, want)
	}
}

func TestAggregateUnknownBaseGrade(t *testing.T) {
	_, err := Aggregate(planModel.PlanGrid{}, "99年", planModel.WorkModeHomeroom)
	if !errors.Is(err, curriculum.ErrUnknownGrade) {
		t.Errorf("Aggregate() error = %v, want ErrUnknownGrade", err)
	}
}

func TestAggregateRoundTrip(t *testing.T) {
	// total agregat harus sama dengan penjumlahan manual semua sel terisi
	grid := planModel.PlanGrid{}
	for _, day := range curriculum.Days() {
		grid[day] = map[string]planModel.PlanCell{}
		for _, period := range curriculum.Periods() {
			grid[day][period] = planModel.PlanCell{Subject: "体育"}
		}
	}
	got, err := Aggregate(grid, "3年", planModel.WorkModeHomeroom)
	if err != nil {
		t.Fatal(err)
	}

	manual := 0
	for _, day := range curriculum.Days() {
		for _, period := range curriculum.Periods() {
			manual += curriculum.MinutesFor(day, period)
		}
	}
	if got["3年"]["体育"] != manual {
		t.Errorf("agregat %d menit, penjumlahan manual %d menit", got["3年"]["体育"], manual)
	}
}
