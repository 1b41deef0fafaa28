// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the classifier, gateway, session state, and
// persistence guard into the engine behind the UI.
//
// Every submitted utterance is classified into exactly one handler and
// executed; the reply is delivered through a sequencer that releases
// completions in submission order, so a fast second request never
// overtakes a slow first one. A failed request releases its slot like
// any other, so one failure never blocks the turns behind it.
package app
