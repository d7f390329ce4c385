// Package email despacha mensajes hacia el relay SMTP.
package email

// Sender es el contrato de despacho. Send es sincrónico: retorna cuando el
// relay aceptó (o rechazó) el mensaje. "Éxito" significa aceptación del
// relay, no entrega al destinatario final.
type Sender interface {
	Send(to, subject, htmlBody string) error
}
