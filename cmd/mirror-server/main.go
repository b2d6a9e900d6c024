package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
)

// Serves a local fixture of the upstream catalog so the indexer can run
// offline: point FAPPSTORE_NEYNAR_BASE_URL at http://localhost:9000.
//
// data/mirror.json holds {"frames": [...]} in the upstream wire format; pages
// of pageSize records are served with an offset-based cursor.

const pageSize = 50

type fixture struct {
	Frames []json.RawMessage `json:"frames"`
}

func main() {
	dataPath := "data/mirror.json"

	http.HandleFunc("/farcaster/frame/catalog", func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(dataPath)
		if err != nil {
			http.Error(w, "cannot read mirror.json: "+err.Error(), http.StatusInternalServerError)
			return
		}
		var fx fixture
		if err := json.Unmarshal(b, &fx); err != nil {
			http.Error(w, "mirror.json invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		offset := 0
		if c := r.URL.Query().Get("cursor"); c != "" {
			n, err := strconv.Atoi(c)
			if err != nil || n < 0 {
				http.Error(w, "bad cursor", http.StatusBadRequest)
				return
			}
			offset = n
		}

		end := offset + pageSize
		if end > len(fx.Frames) {
			end = len(fx.Frames)
		}
		if offset > len(fx.Frames) {
			offset = len(fx.Frames)
		}

		resp := map[string]any{
			"frames": fx.Frames[offset:end],
		}
		if end < len(fx.Frames) {
			resp["next"] = map[string]string{"cursor": strconv.Itoa(end)}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	http.HandleFunc("/farcaster/frame/relevant", func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(dataPath)
		if err != nil {
			http.Error(w, "cannot read mirror.json: "+err.Error(), http.StatusInternalServerError)
			return
		}
		var fx fixture
		if err := json.Unmarshal(b, &fx); err != nil {
			http.Error(w, "mirror.json invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		n := len(fx.Frames)
		if n > 10 {
			n = 10
		}
		items := make([]map[string]json.RawMessage, 0, n)
		for _, f := range fx.Frames[:n] {
			items = append(items, map[string]json.RawMessage{"frame": f})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"relevant_frames": items})
	})

	log.Println("mirror-server listening on http://localhost:9000")
	log.Fatal(http.ListenAndServe(":9000", nil))
}
