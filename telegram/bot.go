package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entuser "github.com/lingvoapp/lingvo-api/ent/user"
)

// Bot runs the registration flow: /start asks for the user's contact, a
// shared contact creates (or finds) the account and replies with a one-time
// login code for the app.
type Bot struct {
	client *Client
	db     *ent.Client
	otp    *auth.OTP
	inv    *cache.Invalidator

	cancel context.CancelFunc
	done   chan struct{}
}

func NewBot(client *Client, db *ent.Client, otp *auth.OTP, inv *cache.Invalidator) *Bot {
	return &Bot{
		client: client,
		db:     db,
		otp:    otp,
		inv:    inv,
		done:   make(chan struct{}),
	}
}

// Start begins the long-poll loop. Safe to call once; a client without a
// token makes Start a no-op.
func (b *Bot) Start(ctx context.Context) {
	if !b.client.Enabled() {
		slog.Warn("telegram bot disabled: BOT_TOKEN not set")
		close(b.done)
		return
	}
	ctx, b.cancel = context.WithCancel(ctx)

	go func() {
		defer close(b.done)
		slog.Info("telegram bot started")

		var offset int64
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			updates, err := b.client.GetUpdates(ctx, offset)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("telegram poll failed", "error", err)
				// Back off briefly so a broken network doesn't spin the loop.
				select {
				case <-ctx.Done():
					return
				case <-time.After(3 * time.Second):
				}
				continue
			}

			for _, u := range updates {
				offset = u.UpdateID + 1
				b.handleUpdate(ctx, u)
			}
		}
	}()
}

// Stop signals the poll loop to stop and waits for it to finish.
func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	<-b.done
}

func (b *Bot) handleUpdate(ctx context.Context, u Update) {
	if u.Message == nil || u.Message.From == nil {
		return
	}
	msg := u.Message

	switch {
	case msg.Contact != nil:
		b.handleContact(ctx, msg)
	case msg.Text == "/start":
		if err := b.client.SendContactRequest(ctx, msg.Chat.ID, welcomeMessage, shareContactButton); err != nil {
			slog.Warn("telegram welcome failed", "chat_id", msg.Chat.ID, "error", err)
		}
	}
}

func (b *Bot) handleContact(ctx context.Context, msg *Message) {
	// Only the account owner's own contact registers the account.
	if msg.Contact.UserID != msg.From.ID {
		if err := b.client.SendMessage(ctx, msg.Chat.ID, notYourContactMessage); err != nil {
			slog.Warn("telegram reply failed", "chat_id", msg.Chat.ID, "error", err)
		}
		return
	}

	phone := NormalizePhone(msg.Contact.PhoneNumber)
	telegramID := msg.From.ID

	if err := b.ensureUser(ctx, telegramID, phone, msg.From); err != nil {
		slog.Error("telegram registration failed", "telegram_id", telegramID, "error", err)
		return
	}

	code, err := b.otp.Issue(ctx, phone)
	if err != nil {
		slog.Error("otp issue failed", "phone", phone, "error", err)
		return
	}

	if err := b.client.SendMessage(ctx, msg.Chat.ID, registeredMessage(phone, code)); err != nil {
		slog.Warn("telegram code delivery failed", "chat_id", msg.Chat.ID, "error", err)
	}
}

// ensureUser creates the account on first contact share. Existing accounts
// are left untouched; profile refresh happens on login instead.
func (b *Bot) ensureUser(ctx context.Context, telegramID int64, phone string, from *User) error {
	exists, err := b.db.User.Query().
		Where(entuser.TelegramID(telegramID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query user: %w", err)
	}
	if exists {
		return nil
	}

	firstName := SanitizeName(from.FirstName)
	if firstName == "" {
		firstName = "Foydalanuvchi"
	}

	create := b.db.User.Create().
		SetTelegramID(telegramID).
		SetPhoneNumber(phone).
		SetFirstName(firstName).
		SetLastName(SanitizeName(from.LastName))

	// Best effort: a missing avatar never blocks registration.
	if avatarURL, err := b.client.ProfilePhotoURL(ctx, telegramID); err == nil && avatarURL != "" {
		create = create.SetAvatarURL(avatarURL)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	b.inv.User(ctx)
	slog.Info("user registered via telegram", "telegram_id", telegramID)
	return nil
}

const (
	shareContactButton = "📱 Telefon raqamni ulashish"

	welcomeMessage = "Ta'lim platformasiga xush kelibsiz! 📚\n\n" +
		"Telefon raqamingizni ulashing."

	notYourContactMessage = "Iltimos, o'zingizning telefon raqamingizni ulashing."
)

func registeredMessage(phone, code string) string {
	return fmt.Sprintf("✅ Ro'yxatdan o'tdingiz!\n\n"+
		"📱 Telefon raqam: %s\n"+
		"🔐 Tasdiqlash kodi: %s\n\n"+
		"Ilovada shu ma'lumotlarni kiriting. Kod 5 daqiqa amal qiladi.", phone, code)
}

// CodeMessage is the text sent when the app requests a fresh login code.
func CodeMessage(code string) string {
	return fmt.Sprintf("🔐 Tasdiqlash kodi: %s\n\n"+
		"Ushbu kod 5 daqiqa davomida amal qiladi. Kodni ilovada kiriting.", code)
}
