package retention

import (
	"fmt"
	"time"
)

type Tip struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

type tipRule struct {
	active func(Stats) bool
	tip    func(Stats) Tip
}

const criticalAtRisk = 10

var tipRules = []tipRule{
	{
		active: func(s Stats) bool { return s.AtRisk > 5 },
		tip: func(s Stats) Tip {
			return Tip{
				Text:     fmt.Sprintf("⚠️ Você tem %d clientes sumidos. Que tal enviar uma promoção de \"Volta pra gente\"?", s.AtRisk),
				Category: "risco",
				Color:    "rose",
			}
		},
	},
	{
		active: func(s Stats) bool { return s.RetentionRate > 0 && s.RetentionRate < 20 },
		tip: staticTip(Tip{
			Text:     "📉 Sua taxa de retorno pode melhorar. Clientes fiéis compram 3x mais!",
			Category: "fid",
			Color:    "indigo",
		}),
	},
	{
		active: func(s Stats) bool { return s.MessagesSent > 10 },
		tip: staticTip(Tip{
			Text:     "🚀 A automação está voando! Mensagens constantes aumentam a lembrança da marca.",
			Category: "auto",
			Color:    "amber",
		}),
	},
	{
		active: always,
		tip: staticTip(Tip{
			Text:     "💡 Dica: Clientes que recebem mimos no aniversário do pet tendem a gastar 20% a mais.",
			Category: "dica",
			Color:    "emerald",
		}),
	},
	{
		active: always,
		tip: staticTip(Tip{
			Text:     "🐾 Sabia? Lembrar a data da vacina é a forma nº 1 de fidelização em Pet Shops.",
			Category: "dica",
			Color:    "sky",
		}),
	},
	{
		active: always,
		tip: staticTip(Tip{
			Text:     "✨ Personalização é tudo. Use o nome do pet nas mensagens para encantar o dono.",
			Category: "dica",
			Color:    "purple",
		}),
	},
}

// SmartTip escolhe a dica do dia. Com muitos clientes em risco a dica
// de risco é forçada; senão gira pelas dicas ativas pelo dia do ano.
func SmartTip(s Stats, today time.Time) Tip {
	var active []Tip
	for _, r := range tipRules {
		if r.active(s) {
			active = append(active, r.tip(s))
		}
	}

	if s.AtRisk > criticalAtRisk {
		return active[0]
	}

	return active[today.YearDay()%len(active)]
}

func always(Stats) bool { return true }

func staticTip(t Tip) func(Stats) Tip {
	return func(Stats) Tip { return t }
}
