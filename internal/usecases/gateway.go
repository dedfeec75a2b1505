package usecases

import (
	"context"

	"clubs.backend/internal/infrastructure/accounts"
)

// GatewayClient is the slice of the identity gateway the usecases depend
// on. Lookups return (nil, nil) for unknown users; errors mean the gateway
// itself failed.
type GatewayClient interface {
	GetUserByID(ctx context.Context, innohassleID string) (*accounts.UserInfo, error)
	GetUserByEmail(ctx context.Context, email string) (*accounts.UserInfo, error)
}
