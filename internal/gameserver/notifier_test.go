package gameserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenft/asset-portal/internal/gameserver"
	"github.com/gamenft/asset-portal/internal/logger"
	"github.com/gamenft/asset-portal/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestNotifier(url string, client *mocks.MockHTTPClient) gameserver.Notifier {
	return gameserver.NewNotifier(gameserver.Config{
		URL:             url,
		WorkerPoolSize:  2,
		WorkerQueueSize: 10,
	}, client)
}

func TestNotifyOwnerChange_PostsPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)

	var captured []byte
	client.EXPECT().
		Post(gomock.Any(), "http://game-server:8080/change-owner", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			var err error
			captured, err = io.ReadAll(body)
			require.NoError(t, err)
			return []byte(`{"ok":true}`), nil
		})

	newOwner := "player-1"
	n := newTestNotifier("http://game-server:8080", client)
	n.NotifyOwnerChange(context.Background(), "c0ffee", &newOwner)
	n.Stop()

	var payload struct {
		UUID     string  `json:"uuid"`
		NewOwner *string `json:"newOwner"`
	}
	require.NoError(t, json.Unmarshal(captured, &payload))
	assert.Equal(t, "c0ffee", payload.UUID)
	require.NotNil(t, payload.NewOwner)
	assert.Equal(t, "player-1", *payload.NewOwner)
}

func TestNotifyOwnerChange_NilOwnerSerializedAsNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)

	var captured []byte
	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			var err error
			captured, err = io.ReadAll(body)
			require.NoError(t, err)
			return nil, nil
		})

	n := newTestNotifier("http://game-server:8080", client)
	n.NotifyOwnerChange(context.Background(), "c0ffee", nil)
	n.Stop()

	assert.JSONEq(t, `{"uuid":"c0ffee","newOwner":null}`, string(captured))
}

func TestNotifyOwnerChange_NoURLSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Post expectation: nothing may reach the client
	client := mocks.NewMockHTTPClient(ctrl)

	n := newTestNotifier("", client)
	n.NotifyOwnerChange(context.Background(), "c0ffee", nil)
	n.Stop()
}

func TestNotifyOwnerChange_FailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	n := newTestNotifier("http://game-server:8080", client)
	n.NotifyOwnerChange(context.Background(), "c0ffee", nil)
	n.Stop()
}
