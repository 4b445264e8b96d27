package payment_gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type paymentGatewayService struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseUrl    string
	apiKey     string
	Log        *zap.Logger
}

// NewPaymentGatewayService builds the client for the external subscription
// provider. Outbound calls share a token-bucket limiter so a burst of tenant
// lookups cannot trip the provider's own throttling.
func NewPaymentGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	rps := internalConfig.PaymentGateway.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &paymentGatewayService{
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		baseUrl: internalConfig.PaymentGateway.BaseUrl,
		apiKey:  internalConfig.PaymentGateway.ApiKey,
		Log:     logger,
	}
}

func (s *paymentGatewayService) GetSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("paymentGatewayService.GetSubscriptionStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}

	url := fmt.Sprintf("%s/v1/subscriptions/%s", s.baseUrl, tenantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	req.Header.Set(constvars.HeaderXAPIKey, s.apiKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.Log.Error("paymentGatewayService.GetSubscriptionStatus request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("unexpected status code %d from payment gateway", resp.StatusCode)
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}

	subscriptionStatus := new(responses.SubscriptionStatus)
	if err := json.NewDecoder(resp.Body).Decode(subscriptionStatus); err != nil {
		return nil, exceptions.ErrPaymentGatewayDecode(err)
	}

	return subscriptionStatus, nil
}
