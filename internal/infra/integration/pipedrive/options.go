package pipedrive

// Tabelas estáticas que traduzem o texto livre do front para o ID numérico
// da opção no Pipedrive. Valor não mapeado vira "sem atualização para este
// campo" (ok = false), nunca erro.

var invoicingOptions = map[string]int{
	"Até R$100 mil/ano":                    173,
	"R$100 mil a R$500 mil/ano":            174,
	"R$500 mil a R$2 milhões/ano":          175,
	"R$2 milhões/ano a R$10 milhões/ano":   176,
	"Acima de R$10 milhões/ano":            177,
}

var collaboratorsOptions = map[string]int{
	"apenas eu": 178,
	"1 a 5":     179,
	"6 a 20":    180,
	"21 a 50":   181,
	"51 a 200":  182,
	"+200":      183,
}

var challengeOptions = map[string]int{
	"Consumo muitos tutoriais, mas não sei qual stack de ferramentas realmente gera lucro e escala.":                  184,
	"Tenho medo de fechar um contrato e não saber estruturar um fluxo que funcione no mundo real sem quebrar.":        185,
	"Não sei como cobrar o valor justo ou demonstrar o ROI da solução de IA para o cliente.":                          186,
	"Sinto que o que eu faço qualquer um faz com o ChatGPT; preciso criar Agentes de Elite que resolvam problemas complexos.": 187,
	"Não tenho um método para prospectar leads qualificados e dependo apenas de indicações esporádicas.":              188,
	"Já vendo alguns projetos, mas a entrega consome todo o meu tempo e não consigo escalar meu faturamento.":         189,
}

var customerStageOptions = map[string]int{
	"Trabalho em outra área, mas quero aproveitar o boom da IA para construir minha liberdade financeira e migrar de carreira.":      190,
	"Já sou dono de agência (marketing, software, etc) e preciso integrar IA urgentemente para não perder mercado.":                  191,
	"Faço alguns freelas de automação, mas sinto que sou visto como um amador e quero me tornar uma referência de elite.":            192,
	"Tenho facilidade técnica, mas percebi que preciso aprender a vender e gerir um negócio de IA para ganhar dinheiro de verdade.":  193,
	"Sou sócio/gestor de uma empresa e quero aprender o método para implementar soluções internas e reduzir custos.":                 194,
	"Domino a técnica e quero estruturar meu conhecimento para ensinar outros, mas me falta o método de escala.":                     195,
}

var investmentOptions = map[string]int{
	"Entendo o valor de um método testado e o investimento está totalmente dentro do meu planejamento para crescer agora":        196,
	"Tenho o capital, mas meu foco é validar como este acompanhamento vai acelerar meu ROI":                                      197,
	"Tenho prioridade total em resolver isso, mas precisaria de opções de parcelamento":                                          198,
	"Reconheço que preciso de ajuda, mas no momento não possuo recurso financeiro para investir em uma mentoria profissional.":   199,
}

func InvoicingOptionID(value string) (int, bool) {
	id, ok := invoicingOptions[value]
	return id, ok
}

func CollaboratorsOptionID(value string) (int, bool) {
	id, ok := collaboratorsOptions[value]
	return id, ok
}

func CustomerStageOptionID(value string) (int, bool) {
	id, ok := customerStageOptions[value]
	return id, ok
}

func InvestmentOptionID(value string) (int, bool) {
	id, ok := investmentOptions[value]
	return id, ok
}

// ChallengeOptionIDs traduz a seleção múltipla de desafios; entradas sem
// mapeamento são descartadas em silêncio.
func ChallengeOptionIDs(values []string) []int {
	var ids []int
	for _, v := range values {
		if id, ok := challengeOptions[v]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
