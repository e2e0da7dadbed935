package models

const (
	ColUsers         = "users"
	ColVideos        = "videos"
	ColComments      = "comments"
	ColLikes         = "likes"
	ColTweets        = "tweets"
	ColPlaylists     = "playlists"
	ColSubscriptions = "subscriptions"
)
