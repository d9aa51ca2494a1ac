package domains

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bitleak/lmstfy/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func TestParseJob_AnalyzeEnvelope(t *testing.T) {
	// apiserver 侧发布的消息必须能被 worker 侧解析
	message := model.AnalyzeJob{
		Payload: model.AnalyzePayload{
			Data: model.AnalyzeData{
				RequestID:  "req-123",
				ActionType: model.ActionTypeAnalyze,
				ID:         "req-123",
				Data: model.AnalyzeBusinessData{
					TriggeredBy: "api",
					Persist:     true,
				},
			},
		},
	}

	data, err := json.Marshal(message)
	require.NoError(t, err)

	_, meta, bizPayload, err := parseJob(context.Background(), &client.Job{ID: "job-1", Data: data}, nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, "req-123", meta.RequestID)
	assert.Equal(t, model.ActionTypeAnalyze, meta.ActionType)
	assert.Equal(t, "req-123", meta.ID)

	// 业务数据透传
	bizJSON, err := json.Marshal(bizPayload)
	require.NoError(t, err)
	var bizData model.AnalyzeBusinessData
	require.NoError(t, json.Unmarshal(bizJSON, &bizData))
	assert.Equal(t, "api", bizData.TriggeredBy)
	assert.True(t, bizData.Persist)
}

func TestParseJob_GeneratesRequestIDWhenMissing(t *testing.T) {
	data, err := json.Marshal(model.AnalyzeJob{
		Payload: model.AnalyzePayload{
			Data: model.AnalyzeData{ActionType: model.ActionTypeAnalyze},
		},
	})
	require.NoError(t, err)

	_, meta, _, err := parseJob(context.Background(), &client.Job{ID: "job-2", Data: data}, nopLogger{})
	require.NoError(t, err)
	assert.NotEmpty(t, meta.RequestID)
}

func TestParseJob_RejectsMalformedJob(t *testing.T) {
	_, _, _, err := parseJob(context.Background(), &client.Job{ID: "job-3", Data: []byte(`{"payload":{}}`)}, nopLogger{})
	require.Error(t, err)

	_, _, _, err = parseJob(context.Background(), &client.Job{ID: "job-4", Data: []byte(`not json`)}, nopLogger{})
	require.Error(t, err)
}
