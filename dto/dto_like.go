package dto

import "go.mongodb.org/mongo-driver/v2/bson"

type ToggleLikeResp struct {
	IsLiked    bool  `json:"isLiked"`
	TotalLikes int64 `json:"totalLikes"`
}

type LikedVideo struct {
	VideoID     bson.ObjectID `bson:"videoId"     json:"videoId"`
	VideoFile   string        `bson:"videoFile"   json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail"   json:"thumbnail"`
	Title       string        `bson:"title"       json:"title"`
	Description string        `bson:"description" json:"description"`
	Duration    float64       `bson:"duration"    json:"duration"`
	Views       int64         `bson:"views"       json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Owner       bson.ObjectID `bson:"owner"       json:"owner"`
}

type LikedVideosResp struct {
	LikedVideos []LikedVideo `json:"likedVideos"`
}
