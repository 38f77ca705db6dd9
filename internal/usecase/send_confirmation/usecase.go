package send_confirmation

import (
	"context"
	"fmt"

	"github.com/m04kA/kinetic-booking/internal/infra/email"
)

// UseCase рендерит и отправляет письмо о бронировании. Ничего не сохраняет.
type UseCase struct {
	renderer Renderer
	sender   Sender
	opts     Options
	logger   Logger
}

func NewUseCase(renderer Renderer, sender Sender, opts Options, logger Logger) *UseCase {
	return &UseCase{
		renderer: renderer,
		sender:   sender,
		opts:     opts,
		logger:   logger,
	}
}

// Execute отправляет подтверждение одного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendConfirmation: %v", err)
		return nil, err
	}

	html, err := uc.renderer.RenderConfirmation(email.ConfirmationData{
		Subject:      uc.opts.Subject,
		Name:         req.Name,
		Date:         req.Date,
		Time:         req.Time,
		Company:      req.Company,
		AddressLines: uc.opts.AddressLines,
	})
	if err != nil {
		uc.logger.Error("SendConfirmation: render for %s failed: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	id, err := uc.sender.Send(ctx, email.Message{
		From:    uc.opts.From,
		To:      req.Email,
		Subject: uc.opts.Subject,
		HTML:    html,
	})
	if err != nil {
		uc.logger.Error("SendConfirmation: send to %s failed: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrSend, err)
	}

	uc.logger.Info("SendConfirmation: sent to %s, id=%s", req.Email, id)
	return &Response{ID: id}, nil
}
