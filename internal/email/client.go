package email

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico con cuerpo HTML
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// ReservaInfo contiene la información de la reserva para el correo de
// confirmación
type ReservaInfo struct {
	ID            string
	ClienteEmail  string
	ClienteNombre string
	Estado        string
	MontoTotal    float64
	FechaCreacion time.Time
}

// SendReservaConfirmacion envía el correo de confirmación de una reserva
func (c *Client) SendReservaConfirmacion(reserva ReservaInfo) error {
	subject := fmt.Sprintf("Confirmación de Reserva %s - %s", reserva.ID, c.fromName)
	htmlBody := generarHTMLConfirmacion(reserva)

	return c.SendEmail(reserva.ClienteEmail, subject, htmlBody)
}

// generarHTMLConfirmacion genera el HTML del correo de confirmación
func generarHTMLConfirmacion(reserva ReservaInfo) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
		<h1 style="color: #333;">¡Reserva Confirmada!</h1>
		<p style="color: #555;">Estimado/a %s, su reserva ha sido confirmada exitosamente.</p>
		<table width="100%%" cellpadding="8" cellspacing="0" style="background-color: #f8f9fa; border-radius: 8px;">
			<tr>
				<td><strong>Reserva:</strong></td>
				<td style="text-align: right;">%s</td>
			</tr>
			<tr>
				<td><strong>Fecha de creación:</strong></td>
				<td style="text-align: right;">%s</td>
			</tr>
			<tr>
				<td><strong>Estado:</strong></td>
				<td style="text-align: right;">%s</td>
			</tr>
			<tr>
				<td><strong>Monto total:</strong></td>
				<td style="text-align: right;"><strong>Bs. %.2f</strong></td>
			</tr>
		</table>
		<p style="color: #999; font-size: 12px; margin-top: 30px;">
			Este es un correo automático, por favor no responder directamente.
		</p>
	</div>
</body>
</html>
`,
		reserva.ClienteNombre,
		reserva.ID,
		reserva.FechaCreacion.Format("02/01/2006 15:04"),
		reserva.Estado,
		reserva.MontoTotal,
	)
}
