package models

// DefaultTasks is the seed task catalog, created once per installation.
func DefaultTasks() []Task {
	return []Task{
		{ID: "fb-1", Platform: PlatformFacebook, Description: "Follow the official page", Reward: 10},
		{ID: "fb-2", Platform: PlatformFacebook, Description: "Like and comment on a post", Reward: 5},
		{ID: "fb-3", Platform: PlatformFacebook, Description: "Share a post", Reward: 15},

		{ID: "x-1", Platform: PlatformXTwitter, Description: "Follow the account", Reward: 10},
		{ID: "x-2", Platform: PlatformXTwitter, Description: "Retweet the latest post", Reward: 5},
		{ID: "x-3", Platform: PlatformXTwitter, Description: "Reply with hashtag #TimeApp", Reward: 10},

		{ID: "tt-1", Platform: PlatformTikTok, Description: "Follow the account", Reward: 10},
		{ID: "tt-2", Platform: PlatformTikTok, Description: "Like a video", Reward: 5},
		{ID: "tt-3", Platform: PlatformTikTok, Description: "Comment on a video", Reward: 5},
		{ID: "tt-4", Platform: PlatformTikTok, Description: "Create a Duet or Stitch", Reward: 20},

		{ID: "ig-1", Platform: PlatformInstagram, Description: "Follow the account", Reward: 10},
		{ID: "ig-2", Platform: PlatformInstagram, Description: "Like a photo", Reward: 5},
		{ID: "ig-3", Platform: PlatformInstagram, Description: "Write a respectful comment", Reward: 10},
		{ID: "ig-4", Platform: PlatformInstagram, Description: "Share in your story", Reward: 15},

		{ID: "yt-1", Platform: PlatformYouTube, Description: "Subscribe to the channel", Reward: 15},
		{ID: "yt-2", Platform: PlatformYouTube, Description: "Like a video", Reward: 10},
		{ID: "yt-3", Platform: PlatformYouTube, Description: "Write a comment", Reward: 10},
		{ID: "yt-4", Platform: PlatformYouTube, Description: "Share with 3 friends", Reward: 20},

		{ID: "tg-1", Platform: PlatformTelegram, Description: "Join the channel", Reward: 10},
		{ID: "tg-2", Platform: PlatformTelegram, Description: "Join the group", Reward: 10},
		{ID: "tg-3", Platform: PlatformTelegram, Description: "Invite 3 people", Reward: 15},
		{ID: "tg-4", Platform: PlatformTelegram, Description: "Participate in a group discussion", Reward: 10},
	}
}
