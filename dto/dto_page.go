package dto

type VideoPage struct {
	Videos     []VideoCard `json:"videos"`
	TotalCount int64       `json:"totalCount"`
	Page       int64       `json:"page"`
	Limit      int64       `json:"limit"`
}

type CommentPage struct {
	Comments   []CommentRow `json:"comments"`
	TotalCount int64        `json:"totalCount"`
	Page       int64        `json:"page"`
	Limit      int64        `json:"limit"`
}

type SubscriberPage struct {
	Subscribers []SubscriberRow `json:"subscribers"`
	TotalCount  int64           `json:"totalCount"`
	Page        int64           `json:"page"`
	Limit       int64           `json:"limit"`
}

type ChannelPage struct {
	Channels   []SubscribedChannelRow `json:"channels"`
	TotalCount int64                  `json:"totalCount"`
	Page       int64                  `json:"page"`
	Limit      int64                  `json:"limit"`
}
