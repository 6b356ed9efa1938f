package utils

import (
	"fmt"
	"painel-app/config"
	"painel-app/models"
	"painel-app/services"

	"gopkg.in/gomail.v2"
)

// SendCapacityAlert avisa por email quando um container estoura a capacidade.
// Melhor esforço: quem chama só loga a falha.
func SendCapacityAlert(container models.Container, load services.ContainerLoad) error {
	if config.SMTPSender == "" || config.AlertRecipient == "" {
		return fmt.Errorf("SMTP not configured")
	}

	body := fmt.Sprintf(
		"O container %s (%s) excedeu a capacidade.\n\nCapacidade: %.3f CBM\nOcupado: %.3f CBM\nExcedente: %.3f CBM\nValor total: %.2f\n",
		container.Nome, container.Numero,
		container.CapacidadeCBM, load.TotalCBM, -load.RemainingCapacity, load.TotalValue,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertRecipient)
	msg.SetHeader("Subject", fmt.Sprintf("Capacidade excedida: %s", container.Nome))
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
