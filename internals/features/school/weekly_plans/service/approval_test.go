package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// :memory: = satu DB per koneksi; paksa satu koneksi saja
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&planModel.WeeklyPlanModel{}, &planModel.HoursLedgerModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPlan(t *testing.T, db *gorm.DB, grade, workMode string, grid planModel.PlanGrid) planModel.WeeklyPlanModel {
	t.Helper()
	totals, err := Aggregate(grid, grade, workMode)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	class := grade[:1] + "-1"
	m := planModel.WeeklyPlanModel{
		WeeklyPlanID:             uuid.New(),
		WeeklyPlanTeacher:        "山田",
		WeeklyPlanGrade:          grade,
		WeeklyPlanClass:          &class,
		WeeklyPlanWorkMode:       workMode,
		WeeklyPlanWeek:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		WeeklyPlanGrid:           datatypes.NewJSONType(grid),
		WeeklyPlanSubjectMinutes: datatypes.NewJSONType(totals),
		WeeklyPlanStatus:         planModel.StatusSubmitted,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return m
}

func ledgerConsumed(t *testing.T, db *gorm.DB, grade, subject string) float64 {
	t.Helper()
	var row planModel.HoursLedgerModel
	err := db.First(&row, "hours_ledger_grade = ? AND hours_ledger_subject = ?", grade, subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	return row.HoursLedgerConsumed
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func monGrid(subject string) planModel.PlanGrid {
	return planModel.PlanGrid{"月": {"1校時": {Subject: subject, Content: "テスト"}}}
}

func TestApproveIncrementsLedgerOnce(t *testing.T) {
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	plan := seedPlan(t, db, "1年", planModel.WorkModeHomeroom, monGrid("国語"))

	got, changed, err := svc.Approve(plan.WeeklyPlanID, "校長")
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if !changed {
		t.Fatal("Approve() pertama harus changed=true")
	}
	if got.WeeklyPlanStatus != planModel.StatusApproved {
		t.Errorf("status = %s, want approved", got.WeeklyPlanStatus)
	}
	if got.WeeklyPlanApprovedAt == nil || got.WeeklyPlanApprovedBy == nil || *got.WeeklyPlanApprovedBy != "校長" {
		t.Errorf("approved_at/approved_by tidak terisi: %+v", got)
	}

	want := float64(40) / 45 // Skenario A: 40 menit ≈ 0.889 koma
	if c := ledgerConsumed(t, db, "1年", "国語"); !almostEqual(c, want) {
		t.Errorf("consumed = %v, want %v", c, want)
	}

	// approve ulang = no-op, ledger TIDAK bertambah
	_, changed, err = svc.Approve(plan.WeeklyPlanID, "教頭")
	if err != nil {
		t.Fatalf("Approve() ulang error = %v", err)
	}
	if changed {
		t.Error("Approve() ulang harus no-op")
	}
	if c := ledgerConsumed(t, db, "1年", "国語"); !almostEqual(c, want) {
		t.Errorf("double count! consumed = %v, want %v", c, want)
	}
}

func TestRejectThenApprove(t *testing.T) {
	// Skenario C: reject submitted → ledger tetap; approve setelahnya → +1x
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	plan := seedPlan(t, db, "2年", planModel.WorkModeHomeroom, monGrid("算数"))

	got, changed, err := svc.Reject(plan.WeeklyPlanID)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if !changed || got.WeeklyPlanStatus != planModel.StatusRejected {
		t.Fatalf("Reject() = (%s, %v)", got.WeeklyPlanStatus, changed)
	}
	if c := ledgerConsumed(t, db, "2年", "算数"); c != 0 {
		t.Errorf("reject tidak boleh menyentuh ledger, consumed = %v", c)
	}

	// reject ulang = no-op
	_, changed, err = svc.Reject(plan.WeeklyPlanID)
	if err != nil || changed {
		t.Fatalf("Reject() ulang = (changed=%v, err=%v), want no-op", changed, err)
	}

	_, changed, err = svc.Approve(plan.WeeklyPlanID, "校長")
	if err != nil || !changed {
		t.Fatalf("Approve() setelah reject = (changed=%v, err=%v)", changed, err)
	}
	want := float64(40) / 45
	if c := ledgerConsumed(t, db, "2年", "算数"); !almostEqual(c, want) {
		t.Errorf("consumed = %v, want %v (tepat satu kali)", c, want)
	}
}

func TestRejectApprovedIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	plan := seedPlan(t, db, "3年", planModel.WorkModeHomeroom, monGrid("理科"))

	if _, _, err := svc.Approve(plan.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Reject(plan.WeeklyPlanID)
	if !errors.Is(err, ErrApprovedIsLocked) {
		t.Errorf("Reject() setelah approve error = %v, want ErrApprovedIsLocked", err)
	}
}

func TestApproveUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	_, _, err := svc.Approve(uuid.New(), "校長")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Approve() error = %v, want ErrPlanNotFound", err)
	}
}

func TestLedgerAccumulatesAcrossPlans(t *testing.T) {
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	p1 := seedPlan(t, db, "5年", planModel.WorkModeHomeroom, monGrid("体育"))
	p2 := seedPlan(t, db, "5年", planModel.WorkModeHomeroom, monGrid("体育"))

	if _, _, err := svc.Approve(p1.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Approve(p2.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}
	want := 2 * float64(40) / 45
	if c := ledgerConsumed(t, db, "5年", "体育"); !almostEqual(c, want) {
		t.Errorf("consumed = %v, want %v", c, want)
	}
}

func TestSpecialistApprovalRoutesAcrossGrades(t *testing.T) {
	db := newTestDB(t)
	svc := &ApprovalService{DB: db}
	grid := planModel.PlanGrid{
		"月": {"1校時": {Class: "4-1", Subject: "音楽"}},
		"火": {"1校時": {Class: "3-2", Subject: "音楽"}},
	}
	plan := seedPlan(t, db, "3年", planModel.WorkModeSpecialist, grid)

	if _, _, err := svc.Approve(plan.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}
	want := float64(40) / 45
	if c := ledgerConsumed(t, db, "4年", "音楽"); !almostEqual(c, want) {
		t.Errorf("4年/音楽 consumed = %v, want %v", c, want)
	}
	if c := ledgerConsumed(t, db, "3年", "音楽"); !almostEqual(c, want) {
		t.Errorf("3年/音楽 consumed = %v, want %v", c, want)
	}
}

func TestLedgerReport(t *testing.T) {
	db := newTestDB(t)
	appr := &ApprovalService{DB: db}
	led := &LedgerService{DB: db}

	plan := seedPlan(t, db, "1年", planModel.WorkModeHomeroom, monGrid("国語"))
	if _, _, err := appr.Approve(plan.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}

	rows, err := led.Report("1年")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) == 0 || rows[0].Subject != "国語" {
		t.Fatalf("laporan harus mengikuti urutan katalog, rows = %+v", rows)
	}
	if !almostEqual(rows[0].Consumed, float64(40)/45) {
		t.Errorf("consumed = %v", rows[0].Consumed)
	}
	if !almostEqual(rows[0].Remaining, 306-float64(40)/45) {
		t.Errorf("remaining = %v", rows[0].Remaining)
	}
}

func TestLedgerReportNegativeRemaining(t *testing.T) {
	// Skenario D: consumed > standard → remaining negatif, bukan 0
	db := newTestDB(t)
	led := &LedgerService{DB: db}
	if err := db.Create(&planModel.HoursLedgerModel{
		HoursLedgerGrade:    "1年",
		HoursLedgerSubject:  "道徳",
		HoursLedgerConsumed: 40,
	}).Error; err != nil {
		t.Fatal(err)
	}

	rows, err := led.Report("1年")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if r.Subject == "道徳" {
			if r.Remaining != 34-40.0 {
				t.Errorf("remaining = %v, want -6", r.Remaining)
			}
			return
		}
	}
	t.Fatal("baris 道徳 tidak ditemukan")
}

func TestTeacherTotals(t *testing.T) {
	db := newTestDB(t)
	appr := &ApprovalService{DB: db}
	led := &LedgerService{DB: db}

	p1 := seedPlan(t, db, "1年", planModel.WorkModeHomeroom, monGrid("国語"))
	seedPlan(t, db, "1年", planModel.WorkModeHomeroom, monGrid("算数")) // tetap submitted

	if _, _, err := appr.Approve(p1.WeeklyPlanID, "校長"); err != nil {
		t.Fatal(err)
	}

	rows, err := led.TeacherTotals()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("hanya rencana approved yang dihitung, rows = %+v", rows)
	}
	r := rows[0]
	if r.Grade != "1年" || r.Teacher != "山田" || r.Subject != "国語" || !almostEqual(r.Units, float64(40)/45) {
		t.Errorf("row = %+v", r)
	}
}
