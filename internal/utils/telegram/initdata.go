package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// User is the user object embedded in signed init data.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// SignInitData builds a Mini App init data string signed with botToken the
// way Telegram signs it, for local clients and tests.
func SignInitData(botToken string, user User, authDate time.Time) string {
	userJSON, _ := json.Marshal(user)

	params := url.Values{}
	params.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	params.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	params.Set("user", string(userJSON))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	params.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return params.Encode()
}
