package middleware

import "context"

type contextKey string

const (
	ctxPartnerID   contextKey = "partner_id"
	ctxPartnerName contextKey = "partner_name"
)

func PartnerIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxPartnerID).(int64); ok {
		return v
	}
	return 0
}

func PartnerNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxPartnerName).(string); ok {
		return v
	}
	return ""
}

// WithPartner injects the authenticated partner into the context.
func WithPartner(ctx context.Context, partnerID int64, partnerName string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxPartnerID, partnerID)
	return context.WithValue(ctx, ctxPartnerName, partnerName)
}
