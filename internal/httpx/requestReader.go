package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies; exported documents are a few hundred KB at most.
const MaxBodyBytes = 5 << 20

func ReadBody[InitType any](r *http.Request) (InitType, error) {
	var body InitType
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		return body, err
	}
	return body, nil
}

func ReadText(r *http.Request) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxBodyBytes {
		return "", fmt.Errorf("request body exceeds %d bytes", MaxBodyBytes)
	}
	return string(data), nil
}
