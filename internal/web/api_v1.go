package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"strconv"
)

// FrameSource exposes the last presented frame of a running engine.
type FrameSource interface {
	Frame() *image.RGBA
	Frames() int
	Title() string
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Title  string `json:"title"`
	Frames int    `json:"frames"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func apiV1Router(handlers APIV1Handlers, frames FrameSource) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, frames) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, frames) })
	mux.HandleFunc("/exit", func(w http.ResponseWriter, r *http.Request) {
		handleExit(w, r, handlers.ExitFunc)
	})
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, frames FrameSource) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if frames == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "no frame source configured")
		return
	}
	resp := statusResponse{Title: frames.Title(), Frames: frames.Frames()}
	if frame := frames.Frame(); frame != nil {
		resp.Width = frame.Bounds().Dx()
		resp.Height = frame.Bounds().Dy()
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleFrame(w http.ResponseWriter, r *http.Request, frames FrameSource) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if frames == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "no frame source configured")
		return
	}
	frame := frames.Frame()
	if frame == nil {
		writeAPIError(w, http.StatusNotFound, "no_frame", "no frame presented yet")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(buf.Bytes())
	}
}

func handleExit(w http.ResponseWriter, r *http.Request, exitFunc func(ctx context.Context) error) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if exitFunc == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "exit not configured")
		return
	}
	if err := exitFunc(r.Context()); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "exit_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
