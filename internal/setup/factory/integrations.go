package factory

import (
	"os"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/infra/mail"
	"github.com/moneta-app/moneta-backend/internal/infra/quotes"
	controllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/integrations"
)

func MakeMailer() usecase.Mailer {
	return mail.NewSmtpMailer(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)
}

func MakeQuoteProvider() usecase.QuoteProvider {
	client := quotes.NewClient(os.Getenv("QUOTES_API_URL"), os.Getenv("QUOTES_API_KEY"))
	return quotes.NewCachedProvider(client, quotes.DefaultCacheTTL)
}

func MakeStockQuoteController() *controllers.StockQuoteController {
	return controllers.NewStockQuoteController(MakeQuoteProvider())
}

func MakeSendEmailController() *controllers.SendEmailController {
	return controllers.NewSendEmailController(MakeMailer())
}

func MakeGoogleCalendarController() *controllers.GoogleCalendarController {
	return controllers.NewGoogleCalendarController()
}

func MakeUploadFileController() *controllers.UploadFileController {
	return controllers.NewUploadFileController()
}
