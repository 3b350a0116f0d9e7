// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enums are stored as their integer representation; the status column is
// indexed because every work-list query filters on it.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileID          string    `gorm:"index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	OrderType       int
	Status          int `gorm:"index"`
	Version         int
	Priority        int
	PWER            int `gorm:"column:pwer"`
	RateBonus       int
	DeliveryTs      time.Time
	DeliveredTs     *time.Time
	ReReview        bool
	ReReviewComment string
	ReportOption    int
	ReportMode      int
	ReportComment   string
	HighDifficulty  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	report := o.ScreeningReport()

	return OrderDTO{
		ID:              o.ID().Bytes(),
		FileID:          o.FileID(),
		CustomerID:      o.CustomerID().Bytes(),
		OrderType:       int(o.OrderType()),
		Status:          int(o.Status()),
		Version:         o.Version(),
		Priority:        o.Priority(),
		PWER:            o.PWER(),
		RateBonus:       o.RateBonus(),
		DeliveryTs:      o.DeliveryTs(),
		DeliveredTs:     o.DeliveredTs(),
		ReReview:        o.IsReReviewRequested(),
		ReReviewComment: o.ReReviewComment(),
		ReportOption:    int(report.Option),
		ReportMode:      int(report.Mode),
		ReportComment:   report.Comment,
		HighDifficulty:  o.IsHighDifficulty(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate via
// RestoreOrder, pinning the loaded status and version for optimistic
// concurrency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Record{
		ID:              id,
		FileID:          dto.FileID,
		CustomerID:      customerID,
		OrderType:       order.Type(dto.OrderType),
		Status:          order.Status(dto.Status),
		Version:         dto.Version,
		Priority:        dto.Priority,
		PWER:            dto.PWER,
		RateBonus:       dto.RateBonus,
		DeliveryTs:      dto.DeliveryTs,
		DeliveredTs:     dto.DeliveredTs,
		ReReview:        dto.ReReview,
		ReReviewComment: dto.ReReviewComment,
		Report: order.Report{
			Option:  order.ReportOption(dto.ReportOption),
			Mode:    order.ReportMode(dto.ReportMode),
			Comment: dto.ReportComment,
		},
		HighDifficulty: dto.HighDifficulty,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}
