package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/splitbill/internal/metrics"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/report"
	"github.com/mmynk/splitbill/internal/validate"
	"github.com/mmynk/splitbill/pkg/api"
)

// Ensure SettlementService implements api.SettlementServiceHandler
var _ api.SettlementServiceHandler = (*SettlementService)(nil)

// SettlementService implements the Connect SettlementService
type SettlementService struct{}

// NewSettlementService creates a new SettlementService.
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

// rejectReason names a validation failure for metrics.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, validate.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, validate.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, validate.ErrNegativeAmount):
		return "negative_amount"
	default:
		return "invalid"
	}
}

// Settle computes balances and the settlement plan for the participants.
func (s *SettlementService) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	group := models.Group{Participants: make([]models.Participant, len(req.Msg.Participants))}
	for i, p := range req.Msg.Participants {
		slog.Debug("Processing participant",
			"index", i+1,
			"name", p.Name,
			"amount", p.Amount,
		)
		group.Participants[i] = models.Participant{Name: p.Name, Paid: p.Amount}
	}

	if err := validate.Participants(group.Participants); err != nil {
		slog.Warn("Settle rejected participants", "error", err)
		metrics.IncRejected(metrics.SourceRPC, rejectReason(err))
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	start := time.Now()
	r := report.ForGroup(group)
	metrics.ObserveSettlement(metrics.SourceRPC, r.Participants(), len(r.Transactions), time.Since(start))

	resp := &api.SettleResponse{
		CalculationID: uuid.New().String(),
		Total:         r.Total,
		Share:         r.Share,
		Balances:      make([]api.Balance, 0, r.Participants()),
		Transactions:  make([]api.Transaction, len(r.Transactions)),
	}
	for _, row := range r.Rows() {
		resp.Balances = append(resp.Balances, api.Balance{
			Name:    row.Name,
			Paid:    row.Paid,
			Balance: row.Balance,
			Status:  string(row.Status),
		})
	}
	for i, t := range r.Transactions {
		resp.Transactions[i] = api.Transaction{
			Payer:    t.Payer,
			Receiver: t.Receiver,
			Amount:   t.Amount,
		}
	}

	slog.Info("Settlement computed",
		"calculation_id", resp.CalculationID,
		"participants", r.Participants(),
		"total", r.Total,
		"transactions", len(r.Transactions),
	)
	return connect.NewResponse(resp), nil
}
