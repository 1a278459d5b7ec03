package routes

import (
	"modular_homes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
	scrubbHandler *handlers.ScrubbHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id/selections", quoteHandler.UpdateSelections)

		quotes.PATCH("/:quote_id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:quote_id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:quote_id/decline", quoteHandler.DeclineQuote)
		quotes.PATCH("/:quote_id/start-contract", quoteHandler.StartContract)
		quotes.PATCH("/:quote_id/complete", quoteHandler.CompleteQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)

		// Derived reads: both recompute from the quote on every call.
		quotes.GET("/:quote_id/totals", quoteHandler.GetTotals)
		quotes.GET("/:quote_id/contingency", quoteHandler.GetContingency)

		quotes.POST("/:quote_id/change-orders", changeOrderHandler.CreateChangeOrder)
		quotes.PATCH("/:quote_id/change-orders/:num/send", changeOrderHandler.SendChangeOrder)
		quotes.PATCH("/:quote_id/change-orders/:num/sign", changeOrderHandler.SignChangeOrder)
		quotes.PATCH("/:quote_id/change-orders/:num/unsign", changeOrderHandler.UnsignChangeOrder)
		quotes.POST("/:quote_id/change-orders/:num/void", changeOrderHandler.VoidChangeOrder)

		quotes.POST("/:quote_id/scrubb", scrubbHandler.RecordActualCost)
		quotes.GET("/:quote_id/scrubb", scrubbHandler.GetHistory)
		quotes.POST("/:quote_id/permits", scrubbHandler.RecordPermit)
		quotes.GET("/:quote_id/permits", scrubbHandler.GetPermits)
	}
}
