package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifierPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Features, 6)

		json.NewEncoder(w).Encode(classifyResponse{
			Label:         1,
			Probabilities: []float64{0.05, 0.95},
		})
	}))
	defer server.Close()

	clf := NewHTTPClassifier(server.URL)
	label, proba, err := clf.Predict(context.Background(), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 1, label)
	assert.Equal(t, [2]float64{0.05, 0.95}, proba)
}

func TestHTTPClassifierServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	clf := NewHTTPClassifier(server.URL)
	_, _, err := clf.Predict(context.Background(), []float64{1})
	assert.Error(t, err)
}

func TestHTTPClassifierBadProbabilities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Label: 0, Probabilities: []float64{1}})
	}))
	defer server.Close()

	clf := NewHTTPClassifier(server.URL)
	_, _, err := clf.Predict(context.Background(), []float64{1})
	assert.Error(t, err)
}
