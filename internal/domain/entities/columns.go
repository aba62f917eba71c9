package entities

// Canonical column orders, applied identically when serializing rows for
// append and when parsing header-keyed rows on read. Earlier revisions of the
// system disagreed between the header constants and the write path; the
// orders below are the single source of truth for both.

var ReportColumns = []string{
	"numero_cvt",
	"created_at",
	"tecnico",
	"cliente",
	"endereco",
	"elevador",
	"servico_realizado",
	"obs",
	"pecas_requeridas",
	"status_cvt",
}

var PartRequestColumns = []string{
	"created_at",
	"tecnico",
	"numero_cvt",
	"ordem_id",
	"peca_codigo",
	"peca_descricao",
	"quantidade",
	"status",
	"prioridade",
	"observacoes",
}

var ClientColumns = []string{
	"codigo",
	"nome",
	"endereco",
	"telefone",
	"email",
	"responsavel",
	"ativo",
}

var PartColumns = []string{
	"codigo",
	"descricao",
	"categoria",
	"campos_extras",
	"ativo",
}

var UserColumns = []string{
	"username",
	"password",
	"role",
	"nome",
}
