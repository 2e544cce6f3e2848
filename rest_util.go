package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"
)

//**********************************************************
// request and response utilities
//**********************************************************

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error(err.Error())
		return req, err
	}
	err = json.Unmarshal(data, &req)
	if err != nil {
		slog.Error(err.Error())
		return req, err
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func MapPost[F any](app *http.ServeMux, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusBadRequest)
			return
		}
		res := handler(body)
		if res.status != http.StatusOK {
			slog.Error("failed POST " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			WriteResponse(w, res.result, res.status)
		}
	})
}

func MapGet(app *http.ServeMux, path string, handler func(url.Values) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		res := handler(r.URL.Query())
		if res.status != http.StatusOK {
			slog.Error("failed GET " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			WriteResponse(w, res.result, res.status)
		}
	})
}
