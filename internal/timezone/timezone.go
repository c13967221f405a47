package timezone

import (
	"log"
	"os"
	"sync"
	"time"
)

const defaultZone = "America/Sao_Paulo"

var (
	loc  *time.Location
	once sync.Once
)

// Location devolve o fuso canônico do negócio, carregado uma única vez
// (APP_TIMEZONE, default America/Sao_Paulo).
func Location() *time.Location {
	once.Do(func() {
		name := os.Getenv("APP_TIMEZONE")
		if name == "" {
			name = defaultZone
		}

		l, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("[TIMEZONE] ⚠️ Fuso %q inválido, usando offset fixo -03:00: %v", name, err)
			l = time.FixedZone("-03", -3*60*60)
		}
		loc = l
	})
	return loc
}

// Now retorna a hora atual no fuso canônico.
func Now() time.Time {
	return time.Now().In(Location())
}

// Normalize REINTERPRETA o relógio de parede de t no fuso canônico.
//
// O banco grava horário local de Brasília com tag UTC, então isto NÃO é uma
// conversão de instante: 2025-03-10T10:00:00Z vira 10:00 em Brasília, não
// 07:00. Toda comparação de janela do scheduler precisa passar por aqui —
// comparar um valor normalizado com Now() é a única comparação segura.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), Location())
}

// NormalizePtr é o Normalize para timestamps opcionais (scheduling_day).
func NormalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := Normalize(*t)
	return &n
}
