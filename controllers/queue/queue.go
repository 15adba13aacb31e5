package queueController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paydesk/apperr"
	"paydesk/models"
	"paydesk/notifier"
	queueValidator "paydesk/validators/queue"
)

type Controller struct {
	DB       *gorm.DB
	Notifier *notifier.Notifier
}

func New(db *gorm.DB, n *notifier.Notifier) *Controller {
	return &Controller{DB: db, Notifier: n}
}

// List returns a page of queued transactions, newest first.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	q, _ := c.Locals("validatedListQuery").(*queueValidator.ListQuery)
	if q == nil {
		q = &queueValidator.ListQuery{Limit: queueValidator.DefaultLimit}
	}

	query := ctrl.DB.Model(&models.TransactionQueue{})
	if q.HideEmptyUTR {
		query = query.Where("coalesce(utr, '') <> ''")
	}

	rows := make([]models.TransactionQueue, 0, q.Limit)
	if err := query.Order("created_at desc").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"rows": rows})
}

type queueStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Declined int `json:"declined"`
}

// Stats counts the full queue, unfiltered and unpaginated.
func (ctrl *Controller) Stats(c *fiber.Ctx) error {
	var stats queueStats
	err := ctrl.DB.Model(&models.TransactionQueue{}).
		Select("count(*) as total, " +
			"coalesce(sum((status = 'approved')::int), 0) as approved, " +
			"coalesce(sum((status = 'pending')::int), 0) as pending, " +
			"coalesce(sum((status = 'declined')::int), 0) as declined").
		Scan(&stats).Error
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (ctrl *Controller) Approve(c *fiber.Ctx) error {
	return ctrl.setStatus(c, models.StatusApproved)
}

func (ctrl *Controller) Decline(c *fiber.Ctx) error {
	return ctrl.setStatus(c, models.StatusDeclined)
}

// setStatus performs the disposition. The update is unconditional on the
// current status: re-dispositioning an already resolved transaction
// succeeds and re-fires the merchant callback with the new outcome. The
// id-scoped update is atomic at the store, so concurrent dispositions race
// safely and the last write wins.
func (ctrl *Controller) setStatus(c *fiber.Ctx, status models.TransactionStatus) error {
	id := c.Params("id")

	var txn models.TransactionQueue
	result := ctrl.DB.Model(&txn).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound()
	}

	// Best effort; the response below does not wait on it.
	ctrl.Notifier.Dispatch(txn, status)

	return c.JSON(fiber.Map{"ok": true})
}
