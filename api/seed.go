package api

import (
	"context"
	"log/slog"

	"github.com/lingvoapp/lingvo-api/ent"
	entuser "github.com/lingvoapp/lingvo-api/ent/user"
	"github.com/lingvoapp/lingvo-api/telegram"
)

// SeedInitialAdmin promotes the configured phone number to admin if that
// user exists. Registration still happens through the Telegram bot; this
// only flips the flag once the account is there.
func SeedInitialAdmin(ctx context.Context, db *ent.Client, phone string) error {
	if phone == "" {
		return nil
	}
	phone = telegram.NormalizePhone(phone)

	u, err := db.User.Query().Where(entuser.PhoneNumber(phone)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Info("initial admin not registered yet", "phone", phone)
			return nil
		}
		return err
	}
	if u.IsAdmin {
		return nil
	}

	if _, err := u.Update().SetIsAdmin(true).Save(ctx); err != nil {
		return err
	}
	slog.Info("granted admin to initial admin", "phone", phone)
	return nil
}
