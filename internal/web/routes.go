package web

import (
	"context"
	"net/http"
)

type APIV1Handlers struct {
	// ExitFunc is called by POST /api/v1/exit. It should ask the running
	// scene to finish.
	ExitFunc func(ctx context.Context) error
}

type APIV1Config struct {
	Handlers APIV1Handlers
	Frames   FrameSource
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg.Handlers, cfg.Frames)))
}

// NewDefaultMux builds the preview mux: the API under /api/v1/ and a page at
// / that shows the live frame.
func NewDefaultMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	mux.HandleFunc("/", handleIndex)
	return mux
}

const indexHTML = `<!doctype html>
<html>
<head><title>koi preview</title></head>
<body style="background:#000;margin:0">
<img id="frame" src="/api/v1/frame.png" style="image-rendering:pixelated;width:100vw;height:100vh;object-fit:contain">
<script>
setInterval(function () {
	document.getElementById("frame").src = "/api/v1/frame.png?t=" + Date.now();
}, 250);
</script>
</body>
</html>
`

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}
