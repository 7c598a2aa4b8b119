// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
)

const (
	sessionParam             = "session"
	accessTokenParam         = "access_token"
	overwritePhotosParam     = "overwrite_photos"
	requireConfirmationParam = "require_confirmation"
	limitParam               = "limit"
)

// startSync upgrades the request to the feedback websocket and runs one sync
// over it. Credentials are checked before the upgrade.
func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.startSync").Msg("sync request rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	opts, err := syncOptionsFromQuery(r.URL.Query())
	if err != nil {
		log.Err(err).Str("func", "*Handler.startSync").Msg("invalid sync options")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	channel, err := feedback.Accept(w, r, log)
	if err != nil {
		// Accept has already written the error response
		log.Err(err).Str("func", "*Handler.startSync").Msg("websocket upgrade failed")
		return
	}

	summary := h.services.RunService.StartRun(r.Context(), session, opts, channel)

	log.Info().
		Str("run_id", summary.RunID).
		Str("outcome", string(summary.Outcome)).
		Msg("sync request finished")
}

// listRuns writes the most recent run summaries as JSON.
func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := intParam(r.URL.Query(), limitParam)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRuns").Msg("invalid limit")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	runs, err := h.services.RunService.ListRuns(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRuns").Msg("error listing sync runs")
		utils.WriteJSONError(w, "error listing sync runs", statusFromError(err))
		return
	}
	if runs == nil {
		runs = []models.SyncSummary{}
	}

	if _, err = utils.WriteJSON(w, runs, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRuns").Msg("error writing response")
	}
}

// sessionFromRequest reads the messaging session id and the directory access
// token. The token comes from "Authorization: Bearer <token>" or, for
// browser websocket clients that cannot set headers, the access_token query
// parameter.
func sessionFromRequest(r *http.Request) (models.SyncSession, error) {
	query := r.URL.Query()

	token, err := accessToken(r.Header.Get("Authorization"), query.Get(accessTokenParam))
	if err != nil {
		return models.SyncSession{}, err
	}

	sessionID := strings.TrimSpace(query.Get(sessionParam))
	if sessionID == "" {
		return models.SyncSession{}, ErrMissingSession
	}

	return models.SyncSession{ID: sessionID, AccessToken: token}, nil
}

func accessToken(authHeader, queryToken string) (string, error) {
	if authHeader == "" {
		if token := strings.TrimSpace(queryToken); token != "" {
			return token, nil
		}
		return "", ErrMissingAccessToken
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrMissingAccessToken
	}

	return token, nil
}

func syncOptionsFromQuery(query url.Values) (models.SyncOptions, error) {
	overwrite, err := boolParam(query, overwritePhotosParam)
	if err != nil {
		return models.SyncOptions{}, err
	}
	confirm, err := boolParam(query, requireConfirmationParam)
	if err != nil {
		return models.SyncOptions{}, err
	}

	return models.SyncOptions{
		OverwritePhotos:     overwrite,
		RequireConfirmation: confirm,
	}, nil
}

// boolParam parses an optional boolean parameter; absent means false.
func boolParam(query url.Values, name string) (bool, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}

// intParam parses an optional integer parameter; absent means 0.
func intParam(query url.Values, name string) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}
