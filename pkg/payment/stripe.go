// Package payment adapts the external card processor. The rest of the app
// only sees the Gateway interface and the two error kinds.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"carparts-store/pkg/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var (
	// ErrGateway means the processor rejected the request.
	ErrGateway = errors.New("payment gateway error")

	// ErrTimeout means the processor did not answer within the bounded
	// timeout.
	ErrTimeout = errors.New("payment gateway timeout")
)

// Gateway creates a payment authorization for an amount in minor units and
// returns the client-usable secret to complete payment client-side.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// MinorUnits converts a decimal currency value to the processor's minor-unit
// representation (20.00 -> 2000).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeGateway struct {
	client   *client.API
	currency string
	timeout  time.Duration
	log      *zap.Logger
}

func NewStripeGateway(config utils.StripeConfig, log *zap.Logger) *StripeGateway {
	sc := &client.API{}
	sc.Init(config.SecretKey, nil)

	return &StripeGateway{
		client:   sc,
		currency: config.Currency,
		timeout:  time.Duration(config.TimeoutSeconds) * time.Second,
		log:      log.With(zap.String("component", "stripe")),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.log.Error("Payment intent timed out",
				zap.Int64("amount", amount),
				zap.Duration("timeout", g.timeout))
			return "", fmt.Errorf("create payment intent: %w", ErrTimeout)
		}
		g.log.Error("Payment intent rejected",
			zap.Int64("amount", amount),
			zap.Error(err))
		return "", fmt.Errorf("create payment intent: %w", ErrGateway)
	}

	g.log.Info("Payment intent created", zap.Int64("amount", amount))
	return intent.ClientSecret, nil
}
