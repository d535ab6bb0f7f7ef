package fossil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fossilApiLog "fossil-api/pkg/logger"
	fossilV1 "fossil-api/pkg/north/api/fossil/core/v1"
	customErr "fossil-api/pkg/util/error"
)

// ValidateBuryPost rejects coordinates outside the globe with a BadRequest.
func ValidateBuryPost(post *fossilV1.BuryPost) error {
	if post.Lat < -90 || post.Lat > 90 || post.Lng < -180 || post.Lng > 180 {
		return customErr.NewBadRequest(http.StatusBadRequest, fmt.Sprintf("coordinates out of range: %v, %v", post.Lat, post.Lng))
	}
	return nil
}

// Bury asks the model what could be dug up at a map location. It always returns a record.
func (a *Assistant) Bury(ctx context.Context, post *fossilV1.BuryPost) *fossilV1.FossilRecord {
	answer := a.llm.Ask(ctx, "bury", BuryPrompt(post.Lat, post.Lng, post.Era))
	if answer.Failed {
		return &fossilV1.FossilRecord{Found: false, Reason: msgLLMUnavailable, Lat: post.Lat, Lng: post.Lng}
	}
	record := ParseFossilRecord(answer.Text, post.Lat, post.Lng)
	fossilApiLog.Logger.Info("bury", "lat", post.Lat, "lng", post.Lng, "found", record.Found, "name", record.Name)
	return record
}

// Examine returns an html explanation of a record produced by Bury.
func (a *Assistant) Examine(ctx context.Context, record *fossilV1.FossilRecord) string {
	recordJson, err := json.Marshal(record)
	if err != nil {
		return msgExamineFailed
	}
	answer := a.llm.Ask(ctx, "examine", ExaminePrompt(string(recordJson)))
	if answer.Failed {
		return msgExamineFailed
	}
	return StripFences(answer.Text)
}
