package send_confirmation

import sendConfirmation "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"

// ConfirmationRequest HTTP request model
type ConfirmationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ConfirmationResponse HTTP модель успешного ответа
type ConfirmationResponse struct {
	Success bool             `json:"success"`
	Data    ConfirmationData `json:"data"`
}

type ConfirmationData struct {
	ID string `json:"id"`
}

func (r *ConfirmationRequest) ToUseCaseRequest() *sendConfirmation.Request {
	return &sendConfirmation.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Date:    r.Date,
		Time:    r.Time,
	}
}
