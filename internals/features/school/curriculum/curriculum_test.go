package curriculum

import (
	"errors"
	"reflect"
	"testing"
)

func TestSubjectsForOrderStable(t *testing.T) {
	for _, grade := range Grades() {
		first, err := SubjectsFor(grade)
		if err != nil {
			t.Fatalf("SubjectsFor(%s) error = %v", grade, err)
		}
		if len(first) == 0 {
			t.Fatalf("SubjectsFor(%s) kosong", grade)
		}
		second, _ := SubjectsFor(grade)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("SubjectsFor(%s) urutan tidak stabil:\n%v\n%v", grade, first, second)
		}
	}
}

func TestSubjectsForDefinitionOrder(t *testing.T) {
	// urutan definisi, bukan alfabetis
	got, err := SubjectsFor("1年")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"国語", "算数", "生活", "音楽", "図工", "体育", "道徳", "特活",
		"学校行事", "読書科", "学校裁量（学力向上）", "学校裁量（探究）",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectsFor(1年) = %v, want %v", got, want)
	}
}

func TestBudgetFor(t *testing.T) {
	tests := []struct {
		name    string
		grade   string
		subject string
		want    float64
		wantErr error
	}{
		{name: "1年 国語", grade: "1年", subject: "国語", want: 306},
		{name: "6年 算数", grade: "6年", subject: "算数", want: 140},
		{name: "budget nol tetap ada", grade: "4年", subject: "家庭科", want: 0},
		{name: "grade tidak dikenal", grade: "7年", subject: "国語", wantErr: ErrUnknownGrade},
		{name: "mapel tidak dikenal", grade: "1年", subject: "理科", wantErr: ErrUnknownSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BudgetFor(tt.grade, tt.subject)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BudgetFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BudgetFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasSubject(t *testing.T) {
	if !HasSubject("5年", "外国語") {
		t.Error("5年 harus punya 外国語")
	}
	if HasSubject("1年", "外国語") {
		t.Error("1年 tidak punya 外国語")
	}
	if HasSubject("9年", "国語") {
		t.Error("grade tak dikenal tidak boleh punya mapel")
	}
}

func TestGradesCopy(t *testing.T) {
	g := Grades()
	g[0] = "x"
	if Grades()[0] != "1年" {
		t.Error("Grades() harus mengembalikan salinan")
	}
}
