package usecase

import (
	"fmt"
	"time"
)

// Templates das mensagens de WhatsApp dos sweeps. Horários sempre já
// normalizados para o fuso canônico antes de formatar.

func confirmationMessage(firstName string, meeting time.Time) string {
	return fmt.Sprintf(
		"Eaee %s! Tudo certo?\n\n"+
			"Aqui é o Marcelo Baldi da b2bflow.\n\n"+
			"Vi que você agendou uma reunião comigo dia %s. e antes quero te ligar e entender melhor seu cenário para tornar nossa call mais produtiva\n\n"+
			"Qual horário posso te ligar?",
		firstName, meeting.Format("02/01 às 15:04"),
	)
}

func recoveryMessage(firstName string) string {
	return fmt.Sprintf(
		"Eaee %s! Tudo certo?\n\n"+
			"Aqui é o Marcelo Baldi da b2bflow.\n\n"+
			"Vi que entrou em contato para atender\n"+
			"como implementar IA na operação, e acredito que posso ajudar\n\n"+
			"Qual horário posso te ligar e entender melhor seu momento?",
		firstName,
	)
}

func reminderMessage(firstName string, meeting time.Time, meetLink string) string {
	return fmt.Sprintf(
		"Bom dia %s! Tudo certo?\n\n"+
			"Para facilitar seu acesso nossa reunião %s\n"+
			"segue o link da call.\n\n"+
			"link:%s\n\n"+
			"Qualquer coisa só chamar!",
		firstName, meeting.Format("15:04"), meetLink,
	)
}
