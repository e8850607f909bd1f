// internals/features/school/weekly_plans/service/approval.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

/* =========================================================
   STATE MACHINE APPROVAL
   submitted|rejected → approved : tambah ledger (sekali saja)
   submitted          → rejected : tanpa efek ledger
   approved           → rejected : DITOLAK — jam yang sudah
     disetujui sudah masuk ledger dan tidak bisa "di-un-ajar"
   Re-approve / re-reject state yang sama = no-op informatif.
   Perubahan status dan penambahan ledger commit bersama dalam
   satu transaksi; cek status dan tulisnya satu UPDATE
   kondisional, jadi dua approver bersamaan terserialisasi dan
   yang kalah melihat "sudah disetujui" tanpa double count.
   ========================================================= */

var (
	ErrPlanNotFound     = errors.New("rencana mingguan tidak ditemukan")
	ErrApprovedIsLocked = errors.New("rencana yang sudah disetujui tidak bisa dikembalikan")
)

type ApprovalService struct {
	DB *gorm.DB
}

// Approve: submitted|rejected → approved. Mengembalikan record terkini dan
// changed=false bila rencana sudah approved (no-op, ledger tidak tersentuh).
func (s *ApprovalService) Approve(planID uuid.UUID, approvedBy string) (*planModel.WeeklyPlanModel, bool, error) {
	var plan planModel.WeeklyPlanModel
	changed := false

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&plan, "weekly_plan_id = ?", planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}
		if plan.WeeklyPlanStatus == planModel.StatusApproved {
			return nil // sudah approved → no-op
		}

		// Hitung ulang agregat dari grid (grid = sumber kebenaran;
		// kolom cache ikut di-refresh di bawah).
		totals, err := Aggregate(plan.WeeklyPlanGrid.Data(), plan.WeeklyPlanGrade, plan.WeeklyPlanWorkMode)
		if err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&planModel.WeeklyPlanModel{}).
			Where("weekly_plan_id = ? AND weekly_plan_status <> ?", planID, planModel.StatusApproved).
			Updates(map[string]interface{}{
				"weekly_plan_status":          planModel.StatusApproved,
				"weekly_plan_approved_at":     now,
				"weekly_plan_approved_by":     approvedBy,
				"weekly_plan_subject_minutes": datatypes.NewJSONType(totals),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// kalah balapan dengan approver lain → perlakukan sebagai no-op
			return tx.First(&plan, "weekly_plan_id = ?", planID).Error
		}

		if err := applyTotals(tx, totals); err != nil {
			return err
		}
		changed = true
		return tx.First(&plan, "weekly_plan_id = ?", planID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &plan, changed, nil
}

// Reject: submitted → rejected, tanpa efek ledger. approved → rejected
// ditolak dengan ErrApprovedIsLocked; rejected → rejected = no-op.
func (s *ApprovalService) Reject(planID uuid.UUID) (*planModel.WeeklyPlanModel, bool, error) {
	var plan planModel.WeeklyPlanModel
	changed := false

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&plan, "weekly_plan_id = ?", planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}
		switch plan.WeeklyPlanStatus {
		case planModel.StatusRejected:
			return nil // no-op
		case planModel.StatusApproved:
			return ErrApprovedIsLocked
		}

		res := tx.Model(&planModel.WeeklyPlanModel{}).
			Where("weekly_plan_id = ? AND weekly_plan_status = ?", planID, planModel.StatusSubmitted).
			Update("weekly_plan_status", planModel.StatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// status berubah di tengah jalan; baca ulang dan putuskan lagi
			if err := tx.First(&plan, "weekly_plan_id = ?", planID).Error; err != nil {
				return err
			}
			if plan.WeeklyPlanStatus == planModel.StatusApproved {
				return ErrApprovedIsLocked
			}
			return nil
		}
		changed = true
		return tx.First(&plan, "weekly_plan_id = ?", planID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &plan, changed, nil
}
