package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/NiraJ01010101/chaiBackend/bootstrap"
	"github.com/NiraJ01010101/chaiBackend/database"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	startOnce     sync.Once
	startErr      error
	testClient    *mongo.Client
	testContainer testcontainers.Container
)

func TestMain(m *testing.M) {
	code := m.Run()
	if testClient != nil {
		_ = testClient.Disconnect(context.Background())
	}
	if testContainer != nil {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = testContainer.Terminate(termCtx)
		cancel()
	}
	os.Exit(code)
}

func startMongo(ctx context.Context) error {
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return err
	}
	testContainer = container

	host, err := container.Host(ctx)
	if err != nil {
		return err
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return err
	}

	client, _, err := database.ConnectMongo(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "test")
	if err != nil {
		return err
	}
	testClient = client
	return nil
}

// setupDB hands each test its own database with indexes in place.
func setupDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	startOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		startErr = startMongo(ctx)
	})
	if startErr != nil {
		t.Skipf("mongo container unavailable: %v", startErr)
	}

	db := testClient.Database("t_" + bson.NewObjectID().Hex())
	require.NoError(t, bootstrap.EnsureIndexes(context.Background(), db))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })
	return db
}

func seedUser(t *testing.T, db *mongo.Database, username string) *models.User {
	t.Helper()
	// $push/$pull fail on a null array, so watchHistory starts empty
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		Fullname:     "Full " + username,
		Avatar:       "http://cdn/" + username + ".png",
		Password:     "hash",
		WatchHistory: []bson.ObjectID{},
	}
	_, err := db.Collection(models.ColUsers).InsertOne(context.Background(), u)
	require.NoError(t, err)
	// InsertOne does not write the generated id back
	var stored models.User
	require.NoError(t, db.Collection(models.ColUsers).FindOne(context.Background(), bson.M{"username": username}).Decode(&stored))
	return &stored
}

func seedVideo(t *testing.T, db *mongo.Database, owner bson.ObjectID, title string, createdAt time.Time) *models.Video {
	t.Helper()
	v := &models.Video{
		ID:          bson.NewObjectID(),
		VideoFile:   "http://cdn/videos/" + title + ".mp4",
		Thumbnail:   "http://cdn/images/" + title + ".png",
		Title:       title,
		Description: "about " + title,
		Duration:    12.5,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	_, err := db.Collection(models.ColVideos).InsertOne(context.Background(), v)
	require.NoError(t, err)
	return v
}
