package readmodel

import (
	"regexp"
	"strings"

	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// idsOnly keeps count joins from materialising whole documents.
var idsOnly = mongo.Pipeline{bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}}}

var userSummary = mongo.Pipeline{bson.D{{Key: "$project", Value: bson.D{
	{Key: "username", Value: 1},
	{Key: "email", Value: 1},
	{Key: "avatar", Value: 1},
}}}}

// ---------- videos ----------

var sortableVideoFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}

type VideoSort struct {
	Field string
	Dir   int
}

// NewVideoSort validates sortBy/sortType. Empty values mean createdAt desc.
func NewVideoSort(sortBy, sortType string) (VideoSort, error) {
	s := VideoSort{Field: "createdAt", Dir: -1}
	if sortBy != "" {
		if !sortableVideoFields[sortBy] {
			return s, apperr.InvalidArgument("sortBy must be one of createdAt, views, duration, title")
		}
		s.Field = sortBy
	}
	switch strings.ToLower(sortType) {
	case "":
	case "asc":
		s.Dir = 1
	case "desc":
		s.Dir = -1
	default:
		return s, apperr.InvalidArgument("sortType must be asc or desc")
	}
	return s, nil
}

func (s VideoSort) doc() bson.D {
	if s.Field == "" {
		return newestFirst
	}
	// _id breaks ties so page windows never overlap
	return bson.D{{Key: s.Field, Value: s.Dir}, {Key: "_id", Value: s.Dir}}
}

type VideoFilter struct {
	Query string
	Owner *bson.ObjectID
	Sort  VideoSort
}

func (f VideoFilter) match() bson.D {
	m := bson.D{}
	if q := strings.TrimSpace(f.Query); q != "" {
		rx := bson.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		m = append(m, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: rx}},
			bson.D{{Key: "description", Value: rx}},
		}})
	}
	if f.Owner != nil {
		m = append(m, bson.E{Key: "owner", Value: *f.Owner})
	}
	return m
}

func ListVideos(f VideoFilter, p Page) mongo.Pipeline {
	return NewBuilder().
		Match(f.match()).
		Sort(f.Sort.doc()).
		Lookup(models.ColUsers, "owner", "_id", "ownerInfo").
		AddFields(bson.D{
			{Key: "channelName", Value: FirstField("ownerInfo", "fullname")},
			{Key: "videoAvatar", Value: FirstField("ownerInfo", "avatar")},
		}).
		Project("_id", "createdAt", "description", "duration", "isPublished", "owner",
			"thumbnail", "title", "views", "channelName", "videoAvatar").
		Paginate(p).
		Pipeline()
}

func VideoDetail(videoID bson.ObjectID) mongo.Pipeline {
	shape := Allow("_id", "videoFile", "thumbnail", "title", "description", "duration",
		"views", "isPublished", "createdAt", "likeCount", "commentsCount")
	shape = append(shape, bson.E{Key: "owner", Value: Sub("ownerDetails", "fullname", "email")})

	return NewBuilder().
		Match(bson.D{{Key: "_id", Value: videoID}}).
		Lookup(models.ColUsers, "owner", "_id", "ownerDetails").
		LookupWith(models.ColLikes, "_id", "video", "likes", idsOnly).
		LookupWith(models.ColComments, "_id", "video", "comments", idsOnly).
		AddFields(bson.D{
			{Key: "ownerDetails", Value: First("ownerDetails")},
			{Key: "likeCount", Value: Count("likes")},
			{Key: "commentsCount", Value: Count("comments")},
		}).
		ProjectSpec(shape).
		Pipeline()
}

// OwnerVideos lists a channel's own uploads for the dashboard.
func OwnerVideos(owner bson.ObjectID) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "owner", Value: owner}}).
		Sort(newestFirst).
		LookupWith(models.ColLikes, "_id", "video", "likes", idsOnly).
		LookupWith(models.ColComments, "_id", "video", "comments", idsOnly).
		AddFields(bson.D{
			{Key: "likeCount", Value: Count("likes")},
			{Key: "commentsCount", Value: Count("comments")},
		}).
		Project("_id", "videoFile", "thumbnail", "title", "description", "duration",
			"views", "isPublished", "createdAt", "likeCount", "commentsCount").
		Pipeline()
}

func ChannelStats(owner bson.ObjectID) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "owner", Value: owner}}).
		LookupWith(models.ColLikes, "_id", "video", "likes", idsOnly).
		AddFields(bson.D{{Key: "likeCount", Value: Count("likes")}}).
		Group(bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: "$likeCount"}}},
		}).
		Project("totalVideos", "totalViews", "totalLikes").
		Pipeline()
}

// ---------- comments ----------

func VideoComments(videoID bson.ObjectID, p Page) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "video", Value: videoID}}).
		Sort(newestFirst).
		LookupWith(models.ColLikes, "_id", "comment", "likes", idsOnly).
		AddFields(bson.D{{Key: "likeCount", Value: Count("likes")}}).
		Project("_id", "content", "video", "owner", "createdAt", "likeCount").
		Paginate(p).
		Pipeline()
}

// ---------- likes ----------

// LikedVideos drops likes whose video no longer exists.
func LikedVideos(user bson.ObjectID) mongo.Pipeline {
	shape := bson.D{{Key: "_id", Value: 0}, {Key: "videoId", Value: "$likedVideo._id"}}
	for _, f := range []string{"videoFile", "thumbnail", "title", "description", "duration", "views", "isPublished", "owner"} {
		shape = append(shape, bson.E{Key: f, Value: "$likedVideo." + f})
	}

	return NewBuilder().
		Match(bson.D{
			{Key: "likedBy", Value: user},
			{Key: "video", Value: bson.D{{Key: "$ne", Value: nil}}},
		}).
		Sort(newestFirst).
		Lookup(models.ColVideos, "video", "_id", "likedVideo").
		AddFields(bson.D{{Key: "likedVideo", Value: First("likedVideo")}}).
		Match(bson.D{{Key: "likedVideo", Value: bson.D{{Key: "$ne", Value: nil}}}}).
		ProjectSpec(shape).
		Pipeline()
}

// ---------- tweets ----------

func UserTweets(owner bson.ObjectID, viewer *bson.ObjectID) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "owner", Value: owner}}).
		Sort(newestFirst).
		LookupWith(models.ColUsers, "owner", "_id", "ownerDetails", mongo.Pipeline{
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "username", Value: 1},
				{Key: "fullname", Value: 1},
				{Key: "avatar", Value: 1},
			}}},
		}).
		Lookup(models.ColLikes, "_id", "tweet", "likes").
		AddFields(bson.D{
			{Key: "ownerDetails", Value: First("ownerDetails")},
			{Key: "likeCount", Value: Count("likes")},
			{Key: "isLiked", Value: Contains(viewer, "likes.likedBy")},
		}).
		Project("_id", "content", "owner", "ownerDetails", "likeCount", "isLiked", "createdAt", "updatedAt").
		Pipeline()
}

// ---------- users / channels ----------

func ChannelProfile(username string, viewer *bson.ObjectID) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "username", Value: strings.ToLower(strings.TrimSpace(username))}}).
		Lookup(models.ColSubscriptions, "_id", "channel", "subscribers").
		LookupWith(models.ColSubscriptions, "_id", "subscriber", "subscribedTo", idsOnly).
		AddFields(bson.D{
			{Key: "subscribersCount", Value: Count("subscribers")},
			{Key: "channelsSubscribedToCount", Value: Count("subscribedTo")},
			{Key: "isSubscribed", Value: Contains(viewer, "subscribers.subscriber")},
		}).
		Project("_id", "fullname", "username", "email", "avatar", "coverImage",
			"subscribersCount", "channelsSubscribedToCount", "isSubscribed").
		Pipeline()
}

// WatchHistory returns one document whose history field holds the watched
// videos in stored order, each with its owner summary. Deleted videos are skipped.
func WatchHistory(user bson.ObjectID) mongo.Pipeline {
	ownerSummary := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "fullname", Value: 1},
			{Key: "username", Value: 1},
			{Key: "avatar", Value: 1},
		}}},
	}
	videoWithOwner := NewBuilder().
		LookupWith(models.ColUsers, "owner", "_id", "ownerDetails", ownerSummary).
		AddFields(bson.D{{Key: "ownerDetails", Value: First("ownerDetails")}}).
		Pipeline()

	return NewBuilder().
		Match(bson.D{{Key: "_id", Value: user}}).
		LookupWith(models.ColVideos, "watchHistory", "_id", "watched", videoWithOwner).
		AddFields(bson.D{{Key: "history", Value: Ordered("watchHistory", "watched")}}).
		Project("history").
		Pipeline()
}

func ChannelSubscribers(channel bson.ObjectID, p Page) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "channel", Value: channel}}).
		Sort(newestFirst).
		LookupWith(models.ColUsers, "subscriber", "_id", "subscriberInfo", userSummary).
		AddFields(bson.D{{Key: "subscriber", Value: First("subscriberInfo")}}).
		Project("_id", "subscriber", "createdAt").
		Paginate(p).
		Pipeline()
}

func SubscribedChannels(subscriber bson.ObjectID, p Page) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "subscriber", Value: subscriber}}).
		Sort(newestFirst).
		LookupWith(models.ColUsers, "channel", "_id", "channelInfo", userSummary).
		AddFields(bson.D{{Key: "channel", Value: First("channelInfo")}}).
		Project("_id", "channel", "createdAt").
		Paginate(p).
		Pipeline()
}

// ---------- playlists ----------

func UserPlaylists(owner bson.ObjectID) mongo.Pipeline {
	return NewBuilder().
		Match(bson.D{{Key: "owner", Value: owner}}).
		Sort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: -1}}).
		AddFields(bson.D{{Key: "totalVideos", Value: Count("videos")}}).
		Project("_id", "name", "description", "owner", "videos", "totalVideos", "createdAt", "updatedAt").
		Pipeline()
}

func PlaylistDetail(playlistID bson.ObjectID) mongo.Pipeline {
	videoCard := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
	}
	return NewBuilder().
		Match(bson.D{{Key: "_id", Value: playlistID}}).
		LookupWith(models.ColVideos, "videos", "_id", "videoDocs", videoCard).
		AddFields(bson.D{
			{Key: "videos", Value: Ordered("videos", "videoDocs")},
		}).
		AddFields(bson.D{{Key: "totalVideos", Value: Count("videos")}}).
		Project("_id", "name", "description", "owner", "videos", "totalVideos", "createdAt", "updatedAt").
		Pipeline()
}

// Ordered maps the id array at ids onto the documents joined into joined,
// keeping the id order and dropping ids with no document.
func Ordered(ids, joined string) bson.D {
	pick := bson.D{{Key: "$first", Value: bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: "$" + joined},
		{Key: "as", Value: "doc"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$doc._id", "$$id"}}}},
	}}}}}
	return bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$" + ids, bson.A{}}}}},
			{Key: "as", Value: "id"},
			{Key: "in", Value: pick},
		}}}},
		{Key: "as", Value: "v"},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{"$$v", nil}}}, nil}}}},
	}}}
}
