// Command initdata prints Mini App init data signed with the configured bot
// token, for calling the API from curl or a local web client.
package main

import (
	"flag"
	"fmt"
	"time"

	"lyra-coin-backend/internal/common/config"
	"lyra-coin-backend/internal/common/logger"
	"lyra-coin-backend/internal/utils/telegram"
)

func main() {
	id := flag.Int64("id", 1001, "Telegram user id")
	firstName := flag.String("first-name", "Local", "first name")
	lastName := flag.String("last-name", "User", "last name")
	username := flag.String("username", "", "username")
	age := flag.Duration("age", 0, "backdate auth_date by this much")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	if *id <= 0 {
		logger.Fatal().Int64("id", *id).Msg("User id must be positive")
	}

	raw := telegram.SignInitData(cfg.Telegram.BotToken, telegram.User{
		ID:        *id,
		FirstName: *firstName,
		LastName:  *lastName,
		Username:  *username,
	}, time.Now().Add(-*age))

	fmt.Println(raw)
}
