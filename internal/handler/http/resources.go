// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// resourceHandler serves the CRUD routes of one user-owned resource.
type resourceHandler[T any] struct {
	name    string
	service service.ResourceService[T]
}

// mountResource registers list, create, get, update and delete under path.
func mountResource[T any](r chi.Router, path, name string, svc service.ResourceService[T]) {
	rh := &resourceHandler[T]{name: name, service: svc}

	r.Get(path, rh.list)
	r.Post(path, rh.create)
	r.Get(path+"/{id}", rh.get)
	r.Put(path+"/{id}", rh.update)
	r.Delete(path+"/{id}", rh.delete)
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter, err := listFilterQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := rh.service.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, items, "", http.StatusOK)
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var item T
	if err = decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := rh.service.Create(r.Context(), userID, item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("resource", rh.name).Msg("resource created")
	utils.WriteSuccess(w, created, rh.name+" created", http.StatusCreated)
}

func (rh *resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownerAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := rh.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, item, "", http.StatusOK)
}

func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownerAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var item T
	if err = decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := rh.service.Update(r.Context(), userID, id, item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, updated, rh.name+" updated", http.StatusOK)
}

func (rh *resourceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownerAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = rh.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, nil, rh.name+" deleted", http.StatusOK)
}

func ownerAndID(r *http.Request) (int64, int64, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return 0, 0, err
	}
	id, err := idParam(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return userID, id, nil
}
