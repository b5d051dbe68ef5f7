package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/internal/dto"
	"github.com/ais-aviation/currency-service/internal/middleware"
	"github.com/ais-aviation/currency-service/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// ratesHandler handles HTTP requests for currencies, rates and conversion.
type ratesHandler struct {
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvc
}

func newRatesHandler(rs portssvc.RateSvcFacade, cs portssvc.ConversionSvc) *ratesHandler {
	return &ratesHandler{
		rateService:       rs,
		conversionService: cs,
	}
}

// registerRateRoutes registers the public currency/rate routes and the
// admin-only refresh route.
func registerRateRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade, cs portssvc.ConversionSvc, adminOnly ...gin.HandlerFunc) {
	h := newRatesHandler(rs, cs)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/exchange-rates", h.listExchangeRates)
	rg.GET("/exchange-rates/:target", h.getExchangeRate)
	rg.POST("/convert", h.convert)
	rg.POST("/format", h.format)

	refresh := append(append([]gin.HandlerFunc{}, adminOnly...), h.refreshExchangeRates)
	rg.POST("/exchange-rates/refresh", refresh...)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the closed set of currencies the system prices in, with display symbols
// @Tags rates
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *ratesHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(domain.SupportedCurrencies()))
}

// listExchangeRates godoc
// @Summary List stored exchange rates
// @Description Returns every stored rate relative to the base currency. An empty list means no refresh has succeeded yet.
// @Tags rates
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *ratesHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ratesList, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(ratesList))
}

// getExchangeRate godoc
// @Summary Get one exchange rate
// @Description Returns the rate from the base currency to the target currency. The base currency always resolves to 1.
// @Tags rates
// @Produce json
// @Param target path string true "Target currency code (3 letters)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 404 {object} map[string]string "No stored rate for this currency"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{target} [get]
func (h *ratesHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	target := c.Param("target")

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrency):
			logger.Warn("Unsupported currency code requested", slog.String("target", target))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Exchange rate not found", slog.String("target", target))
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		default:
			logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"baseCurrency":   domain.BaseCurrencyCode,
		"targetCurrency": target,
		"rate":           rate,
	})
}

// convert godoc
// @Summary Convert a base-currency amount
// @Description Converts an amount of SAR minor units (halalas) into the target currency's minor units, rounding half-up
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Amount and target currency"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid request or unsupported currency"
// @Failure 404 {object} map[string]string "No stored rate for this currency"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /convert [post]
func (h *ratesHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	converted, err := h.conversionService.Convert(c.Request.Context(), req.AmountInSAR, req.TargetCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rate available for " + req.TargetCurrency})
		default:
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	formatted, err := h.conversionService.Format(converted, req.TargetCurrency)
	if err != nil {
		logger.Error("Failed to format converted amount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to format amount"})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		OriginalAmount:   req.AmountInSAR,
		OriginalCurrency: domain.BaseCurrencyCode,
		ConvertedAmount:  converted,
		TargetCurrency:   req.TargetCurrency,
		Formatted:        formatted,
	})
}

// format godoc
// @Summary Format a minor-unit amount
// @Description Renders a minor-unit amount with the currency's canonical symbol and two decimal places
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.FormatRequest true "Amount and currency"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid request or unsupported currency"
// @Router /format [post]
func (h *ratesHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for format", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	formatted, err := h.conversionService.Format(req.AmountInCents, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FormatResponse{Formatted: formatted})
}

// refreshExchangeRates godoc
// @Summary Refresh exchange rates from the upstream source
// @Description Fetches current market rates and upserts them. Failures are reported as success=false rather than an error status so callers can show a non-fatal notice.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Security BearerAuth
// @Router /exchange-rates/refresh [post]
func (h *ratesHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.rateService.RefreshExchangeRates(c.Request.Context()); err != nil {
		metrics.RateRefreshTotal.WithLabelValues("failure").Inc()
		logger.Error("Exchange rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.RefreshResponse{
			Success: false,
			Message: "Failed to refresh exchange rates: " + err.Error(),
		})
		return
	}

	metrics.RateRefreshTotal.WithLabelValues("success").Inc()
	logger.Info("Exchange rates refreshed")
	c.JSON(http.StatusOK, dto.RefreshResponse{
		Success: true,
		Message: "Exchange rates refreshed successfully",
	})
}
