// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API and the HTML catalog of the study
// spots server on top of chi.
//
// Routes:
//
//	GET    /              server-rendered catalog page
//	GET    /data          list spots
//	POST   /data          create a spot
//	GET    /data/{id}     fetch one spot
//	PUT    /data/{id}     replace a spot
//	DELETE /data/{id}     delete a spot
//	GET    /api/version   build information
//	GET    /metrics       Prometheus metrics
//
// Every failure is answered with a JSON body {"error": "..."}.
package http
