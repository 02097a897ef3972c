// Package api defines the splitbill.v1 Connect API: message types, the
// SettlementService handler interface and a typed client.
package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
)

const (
	// SettlementServiceName is the fully-qualified name of the service.
	SettlementServiceName = "splitbill.v1.SettlementService"

	// SettlementServiceSettleProcedure is the path of the Settle RPC.
	SettlementServiceSettleProcedure = "/" + SettlementServiceName + "/Settle"
)

// Participant is one person and what they paid.
type Participant struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SettleRequest asks for balances and a settlement plan for one expense.
type SettleRequest struct {
	Participants []Participant `json:"participants"`
}

// Balance is one person's net position.
type Balance struct {
	Name    string          `json:"name"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
	Status  string          `json:"status"`
}

// Transaction is one payment in the plan.
type Transaction struct {
	Payer    string          `json:"payer"`
	Receiver string          `json:"receiver"`
	Amount   decimal.Decimal `json:"amount"`
}

// SettleResponse carries the computed totals, balances and payments.
type SettleResponse struct {
	CalculationID string          `json:"calculation_id"`
	Total         decimal.Decimal `json:"total"`
	Share         decimal.Decimal `json:"share"`
	Balances      []Balance       `json:"balances"`
	Transactions  []Transaction   `json:"transactions"`
}

// SettlementServiceHandler is implemented by the server.
type SettlementServiceHandler interface {
	Settle(context.Context, *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler for svc and returns the
// path to mount it on.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	settle := connect.NewUnaryHandler(SettlementServiceSettleProcedure, svc.Settle, opts...)

	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceSettleProcedure:
			settle.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SettlementServiceClient calls SettlementService.
type SettlementServiceClient interface {
	Settle(context.Context, *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error)
}

type settlementServiceClient struct {
	settle *connect.Client[SettleRequest, SettleResponse]
}

// NewSettlementServiceClient returns a client for the service at baseURL.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &settlementServiceClient{
		settle: connect.NewClient[SettleRequest, SettleResponse](httpClient, baseURL+SettlementServiceSettleProcedure, opts...),
	}
}

func (c *settlementServiceClient) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}
