// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeranaias/muse-tui/internal/gateway"
	"github.com/jeranaias/muse-tui/internal/router"
	"github.com/jeranaias/muse-tui/internal/session"
	"github.com/jeranaias/muse-tui/internal/storage"
)

// =============================================================================
// REPLY
// =============================================================================

// Reply is the outcome of processing one utterance.
type Reply struct {
	// Text is the response shown to the user.
	Text string
	// ImageDataURL is set when the reply carries an image.
	ImageDataURL string
	// IsError marks a failed request.
	IsError bool
	// Handler is the classification the utterance received.
	Handler router.Kind
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine executes classified utterances against the backend and keeps
// session state and persistence in sync.
type Engine struct {
	state      *session.State
	gw         *gateway.Client
	guard      *storage.Guard
	classifier *router.Classifier
	seq        *sequencer
}

// NewEngine wires an engine over its collaborators.
func NewEngine(state *session.State, gw *gateway.Client, guard *storage.Guard) *Engine {
	return &Engine{
		state:      state,
		gw:         gw,
		guard:      guard,
		classifier: router.NewClassifier(),
		seq:        newSequencer(),
	}
}

// Submit processes the utterance on its own goroutine and hands the
// reply to deliver. Replies are delivered in submission order even
// when later requests finish first; deliver runs on an engine
// goroutine, not the caller's.
func (e *Engine) Submit(ctx context.Context, utterance, imageDataURL string, deliver func(Reply)) {
	id := e.seq.ticket()
	go func() {
		reply := e.Process(ctx, utterance, imageDataURL)
		e.seq.done(id, func() { deliver(reply) })
	}()
}

// Process classifies and executes one utterance synchronously.
func (e *Engine) Process(ctx context.Context, utterance, imageDataURL string) Reply {
	rctx := router.Context{
		HasAttachedImage:  imageDataURL != "",
		HasPendingUpload:  e.state.PendingUpload() != nil,
		HasGeneratedImage: e.state.LastGenerated() != nil,
	}
	decision := e.classifier.Classify(utterance, rctx)

	// The user turn enters the history before the backend call, so the
	// request history the backend sees includes the current message.
	e.state.AppendTurn(session.UserTurn(utterance, imageDataURL))

	var reply Reply
	switch decision.Kind {
	case router.KindTimeAnswer:
		reply = Reply{Text: decision.Answer}
	case router.KindGenerate:
		reply = e.generate(ctx, decision)
	case router.KindEdit:
		reply = e.edit(ctx, decision, imageDataURL)
	case router.KindVision:
		reply = e.vision(ctx, decision, imageDataURL)
	default:
		reply = e.chat(ctx, decision)
	}
	reply.Handler = decision.Kind

	// Failures are recorded too, so the backend sees the full exchange
	// on the next request.
	e.state.AppendTurn(session.ModelTurn(reply.Text, reply.ImageDataURL))
	_ = e.guard.Save()

	return reply
}

// =============================================================================
// HANDLERS
// =============================================================================

func (e *Engine) chat(ctx context.Context, d router.Decision) Reply {
	answer, err := e.gw.Chat(ctx, d.Prompt, e.state.History(), e.state.Model())
	if err != nil {
		return errorReply("Sorry, something went wrong. %s", err)
	}
	return Reply{Text: answer}
}

func (e *Engine) vision(ctx context.Context, d router.Decision, imageDataURL string) Reply {
	answer, err := e.gw.ChatWithImage(ctx, d.Prompt, imageDataURL, e.state.History(), e.state.Model())
	if err != nil {
		return errorReply("Sorry, something went wrong. %s", err)
	}
	return Reply{Text: answer}
}

func (e *Engine) generate(ctx context.Context, d router.Decision) Reply {
	res, err := e.gw.GenerateImage(ctx, d.Prompt)
	if err != nil {
		return errorReply("Sorry, I couldn't generate the image. Error: %s", err)
	}
	e.state.SetLastGenerated(res.DataURL, d.Prompt)
	return Reply{
		Text:         fmt.Sprintf("Here's your generated image for: %q (generated with %s)", d.Prompt, res.Provider),
		ImageDataURL: res.DataURL,
	}
}

func (e *Engine) edit(ctx context.Context, d router.Decision, imageDataURL string) Reply {
	var source string
	switch d.EditSource {
	case router.SourceAttached:
		source = imageDataURL
	case router.SourcePendingUpload:
		if up := e.state.PendingUpload(); up != nil {
			source = up.DataURL
		}
	case router.SourceLastGenerated:
		if img := e.state.LastGenerated(); img != nil {
			source = img.DataURL
		}
	}
	if source == "" {
		return errorReply("Sorry, I couldn't edit the image. Error: %s",
			errors.New("no image available to edit"))
	}

	edited, err := e.gw.EditImage(ctx, source, d.Prompt)
	if err != nil {
		return errorReply("Sorry, I couldn't edit the image. Error: %s", err)
	}

	// The edited result becomes the new edit target; a consumed pending
	// upload is released only on success so a failed edit can be retried.
	e.state.SetLastGenerated(edited, d.Prompt)
	if d.EditSource == router.SourcePendingUpload {
		e.state.ClearPendingUpload()
	}

	return Reply{
		Text:         fmt.Sprintf("Here's your edited image: %q", d.Prompt),
		ImageDataURL: edited,
	}
}

// errorReply formats a user-facing failure. Backend-authored messages
// pass through verbatim; transport failures get a generic description.
func errorReply(format string, err error) Reply {
	var be *gateway.BackendError
	msg := "connection to the backend failed"
	if errors.As(err, &be) {
		msg = be.Message
	}
	return Reply{Text: fmt.Sprintf(format, msg), IsError: true}
}
