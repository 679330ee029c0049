// Package notification delivers loyalty points notifications to users.
package notification

import (
	"fmt"
	"strconv"

	"storefront/internal/domain/service"
)

// message is the rendered user-facing content of a points event
type message struct {
	Subject string
	Body    string
}

func displayName(r service.Recipient) string {
	if r.Name != "" {
		return r.Name
	}

	return r.Email
}

// render builds the subject and plain-text body for an event
func render(event *service.PointsEvent) message {
	name := displayName(event.Recipient)
	p := event.Payload

	switch event.Type {
	case service.PointsEventLevelUp:
		return message{
			Subject: fmt.Sprintf("¡Has subido al nivel %d!", p.Level),
			Body: fmt.Sprintf("¡Felicidades %s! Has alcanzado el nivel %d. "+
				"Nos pondremos en contacto contigo para entregarte tu premio.", name, p.Level),
		}
	case service.PointsEventLose:
		return message{
			Subject: "Has eliminado una reseña y has perdido puntos",
			Body: fmt.Sprintf("Hola %s, has perdido %d puntos. Puntos actuales: %d. Puntos para el próximo premio: %d.",
				name, abs(p.Delta), p.Points, p.PointsToNextLevel),
		}
	default:
		return message{
			Subject: fmt.Sprintf("¡Gracias por tu reseña, has ganado %d puntos!", abs(p.Delta)),
			Body: fmt.Sprintf("¡Enhorabuena %s! Has ganado %d puntos. Puntos actuales: %d. Puntos para el próximo premio: %d.",
				name, abs(p.Delta), p.Points, p.PointsToNextLevel),
		}
	}
}

// data is the flat key/value form of an event for push payloads
func data(event *service.PointsEvent) map[string]string {
	return map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"points":     strconv.Itoa(event.Payload.Points),
		"level":      strconv.Itoa(event.Payload.Level),
		"delta":      strconv.Itoa(event.Payload.Delta),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
