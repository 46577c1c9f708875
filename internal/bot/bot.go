package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/models"
	"casino-ledger-backend/internal/services"
)

// Approver defines the decision surface the bot consumes.
type Approver interface {
	Approve(ctx context.Context, requestID int64, reviewer string) (*services.ApprovalResult, error)
	Reject(ctx context.Context, requestID int64, reviewer, comment string) (*services.ApprovalResult, error)
}

// API is the slice of tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot pushes new withdrawal requests to the reviewer chat and dispatches the
// inline approve/reject decisions back to the approval service. It also
// delivers resolution messages to users with a linked chat.
//
// Bot implements services.ReviewSender and services.UserSender.
type Bot struct {
	api            API
	reviewerChatID int64
	approver       Approver
}

// New creates a new Bot posting review requests to reviewerChatID.
func New(api API, reviewerChatID int64, approver Approver) *Bot {
	return &Bot{
		api:            api,
		reviewerChatID: reviewerChatID,
		approver:       approver,
	}
}

// SetApprover injects the approver after construction. The bot is created
// before the approval service because the request pipeline needs the bot as
// its review sender; call SetApprover before Start.
func (b *Bot) SetApprover(approver Approver) {
	b.approver = approver
}

// buildReviewMessage renders the reviewer card for one request.
func buildReviewMessage(req models.WithdrawalRequest, user models.UserDB) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Withdrawal request #%d\n\n", req.ID)
	fmt.Fprintf(&sb, "User: %s\n", user.Username)
	fmt.Fprintf(&sb, "Amount: %.2f RUB\n", req.Amount)
	fmt.Fprintf(&sb, "Address: %s\n", req.DestinationAddress)
	fmt.Fprintf(&sb, "Referrals: %d\n", req.ReferralsCount)
	fmt.Fprintf(&sb, "Total earnings: %.2f RUB", req.TotalEarnings)
	return sb.String()
}

// parseCallbackData splits an "approve:<id>" / "reject:<id>" callback payload.
func parseCallbackData(data string) (action string, requestID int64, err error) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed callback data: %q", data)
	}
	if parts[0] != "approve" && parts[0] != "reject" {
		return "", 0, fmt.Errorf("unknown callback action: %q", parts[0])
	}
	requestID, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed request id in callback data: %q", data)
	}
	return parts[0], requestID, nil
}

// SendReviewRequest posts the request card with approve/reject buttons to the
// reviewer chat.
func (b *Bot) SendReviewRequest(ctx context.Context, req models.WithdrawalRequest, user models.UserDB) error {
	msg := tgbotapi.NewMessage(b.reviewerChatID, buildReviewMessage(req, user))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Approve", fmt.Sprintf("approve:%d", req.ID)),
			tgbotapi.NewInlineKeyboardButtonData("Reject", fmt.Sprintf("reject:%d", req.ID)),
		),
	)

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send review request: %w", err)
	}
	return nil
}

// SendUserResult delivers a resolution message to the user's chat.
func (b *Bot) SendUserResult(ctx context.Context, chatID int64, message string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, message)); err != nil {
		return fmt.Errorf("failed to send user result: %w", err)
	}
	return nil
}

// Start consumes the update stream until ctx is cancelled. Only callback
// queries from the reviewer chat are acted on.
func (b *Bot) Start(ctx context.Context) {
	logger.Log.Infow("starting reviewer bot", "reviewer_chat_id", b.reviewerChatID)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Log.Info("reviewer bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.CallbackQuery != nil {
				b.handleCallback(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil || callback.Message.Chat.ID != b.reviewerChatID {
		return
	}

	action, requestID, err := parseCallbackData(callback.Data)
	if err != nil {
		logger.Log.Errorw("ignoring callback", "data", callback.Data, "error", err)
		b.answerCallback(callback.ID, "Unrecognized action")
		return
	}

	reviewer := callback.From.UserName
	if reviewer == "" {
		reviewer = strconv.FormatInt(callback.From.ID, 10)
	}

	var result *services.ApprovalResult
	switch action {
	case "approve":
		result, err = b.approver.Approve(ctx, requestID, reviewer)
	case "reject":
		result, err = b.approver.Reject(ctx, requestID, reviewer, "")
	}

	var outcome string
	switch {
	case err == nil:
		outcome = fmt.Sprintf("Request #%d %s by @%s", requestID, result.Status, reviewer)
	case errors.Is(err, services.ErrAlreadyProcessed):
		outcome = fmt.Sprintf("Request #%d was already processed", requestID)
	case errors.Is(err, services.ErrRequestNotFound):
		outcome = fmt.Sprintf("Request #%d not found", requestID)
	default:
		logger.Log.Errorw("failed to process decision", "request_id", requestID, "action", action, "error", err)
		outcome = fmt.Sprintf("Failed to process request #%d, try again", requestID)
	}

	b.answerCallback(callback.ID, outcome)

	// Drop the buttons and append the outcome to the card so a second tap
	// has nothing to press.
	if err == nil || errors.Is(err, services.ErrAlreadyProcessed) {
		edit := tgbotapi.NewEditMessageText(
			b.reviewerChatID,
			callback.Message.MessageID,
			callback.Message.Text+"\n\n"+outcome,
		)
		if _, sendErr := b.api.Send(edit); sendErr != nil {
			logger.Log.Errorw("failed to edit review card", "request_id", requestID, "error", sendErr)
		}
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logger.Log.Errorw("failed to answer callback", "error", err)
	}
}
