package models

import (
	"encoding/json"
	"fmt"
)

// Platform is the social network a task points at.
type Platform int

const (
	PlatformFacebook Platform = iota + 1
	PlatformXTwitter
	PlatformTikTok
	PlatformInstagram
	PlatformYouTube
	PlatformTelegram
)

// PlatformInfo is the static data attached to every platform.
type PlatformInfo struct {
	Name           string `json:"name"`
	Link           string `json:"link"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	TranslationKey string `json:"translation_key"`
}

var platformTable = map[Platform]PlatformInfo{
	PlatformFacebook: {
		Name:           "Facebook",
		Link:           "https://www.facebook.com/profile.php?id=61575500415354",
		Color:          "blue-500",
		Icon:           "facebook",
		TranslationKey: "facebook",
	},
	PlatformXTwitter: {
		Name:           "X/Twitter",
		Link:           "https://x.com/CoinLyra90781",
		Color:          "gray-500",
		Icon:           "x",
		TranslationKey: "xtwitter",
	},
	PlatformTikTok: {
		Name:           "TikTok",
		Link:           "https://www.tiktok.com/@lyracoin",
		Color:          "pink-500",
		Icon:           "music",
		TranslationKey: "tiktok",
	},
	PlatformInstagram: {
		Name:           "Instagram",
		Link:           "https://www.instagram.com/lyracoin950/",
		Color:          "pink-500",
		Icon:           "instagram",
		TranslationKey: "instagram",
	},
	PlatformYouTube: {
		Name:           "YouTube",
		Link:           "https://www.youtube.com/channel/UCfxBlnbBd9D37Oue5JpK-Rg",
		Color:          "red-500",
		Icon:           "youtube",
		TranslationKey: "youtube",
	},
	PlatformTelegram: {
		Name:           "Telegram",
		Link:           "https://t.me/LYRACOIN25",
		Color:          "blue-400",
		Icon:           "send",
		TranslationKey: "telegram",
	},
}

// Platforms lists every platform in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformFacebook,
		PlatformXTwitter,
		PlatformTikTok,
		PlatformInstagram,
		PlatformYouTube,
		PlatformTelegram,
	}
}

// ParsePlatform maps a persisted platform name back to the enum.
func ParsePlatform(name string) (Platform, error) {
	for p, info := range platformTable {
		if info.Name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

func (p Platform) Valid() bool {
	_, ok := platformTable[p]
	return ok
}

func (p Platform) Info() PlatformInfo {
	return platformTable[p]
}

func (p Platform) String() string {
	if info, ok := platformTable[p]; ok {
		return info.Name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

func (p Platform) Link() string {
	return platformTable[p].Link
}

func (p Platform) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid platform %d", int(p))
	}
	return json.Marshal(p.String())
}

func (p *Platform) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParsePlatform(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
