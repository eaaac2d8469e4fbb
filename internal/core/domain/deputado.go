package domain

// Deputado is a normalized legislator profile from the civic API.
// The civic API is a read-only mirror of the Câmara open-data feed;
// nullable upstream columns map to pointer or zero-valued fields.
type Deputado struct {
	ID                     int64    `json:"id"`
	URI                    string   `json:"uri,omitempty"`
	NomeCivil              string   `json:"nome_civil,omitempty"`
	Sexo                   string   `json:"sexo,omitempty"`
	URLWebsite             string   `json:"url_website,omitempty"`
	RedeSocial             []string `json:"rede_social,omitempty"`
	DataNascimento         string   `json:"data_nascimento,omitempty"`
	UFNascimento           string   `json:"uf_nascimento,omitempty"`
	MunicipioNascimento    string   `json:"municipio_nascimento,omitempty"`
	Escolaridade           string   `json:"escolaridade,omitempty"`
	StatusNome             string   `json:"status_nome,omitempty"`
	StatusNomeEleitoral    string   `json:"status_nome_eleitoral,omitempty"`
	StatusSiglaPartido     string   `json:"status_sigla_partido,omitempty"`
	StatusSiglaUF          string   `json:"status_sigla_uf,omitempty"`
	StatusIDLegislatura    int64    `json:"status_id_legislatura,omitempty"`
	StatusSituacao         string   `json:"status_situacao,omitempty"`
	StatusCondicaoEleitoral string  `json:"status_condicao_eleitoral,omitempty"`
	StatusEmail            string   `json:"status_email,omitempty"`
	FotoURL                string   `json:"foto_url,omitempty"`
	GabineteNome           string   `json:"gabinete_nome,omitempty"`
	GabineteSala           string   `json:"gabinete_sala,omitempty"`
	GabineteTelefone       string   `json:"gabinete_telefone,omitempty"`
	GabineteEmail          string   `json:"gabinete_email,omitempty"`
	AtualizadoEm           int64    `json:"atualizado_em,omitempty"`
}

// DisplayName prefers the electoral name over the civil name.
func (d Deputado) DisplayName() string {
	if d.StatusNomeEleitoral != "" {
		return d.StatusNomeEleitoral
	}
	if d.StatusNome != "" {
		return d.StatusNome
	}
	return d.NomeCivil
}

// ExpenseSummary aggregates a legislator's recent reimbursements.
type ExpenseSummary struct {
	ID                    int64   `json:"id"`
	LatestYear            int     `json:"latest_year"`
	LatestMonth           int     `json:"latest_month"`
	LatestTotalLiquido    float64 `json:"latest_total_liquido"`
	AvgLast3MonthsLiquido float64 `json:"avg_last_3_months_liquido"`
	MonthsConsidered      int     `json:"months_considered"`
}

// ExpenseItem is one reimbursement line.
type ExpenseItem struct {
	ID                 int64   `json:"id"`
	DeputadoID         int64   `json:"deputado_id"`
	Ano                int     `json:"ano"`
	Mes                int     `json:"mes"`
	DataDocumento      string  `json:"data_documento,omitempty"`
	TipoDespesa        string  `json:"tipo_despesa,omitempty"`
	NomeFornecedor     string  `json:"nome_fornecedor,omitempty"`
	CNPJCPFFornecedor  string  `json:"cnpj_cpf_fornecedor,omitempty"`
	TipoDocumento      string  `json:"tipo_documento,omitempty"`
	NumDocumento       string  `json:"num_documento,omitempty"`
	ValorDocumento     float64 `json:"valor_documento,omitempty"`
	ValorGlosa         float64 `json:"valor_glosa,omitempty"`
	ValorLiquido       float64 `json:"valor_liquido,omitempty"`
	URLDocumento       string  `json:"url_documento,omitempty"`
}

// DeputadoQuery narrows a civic API listing server-side.
type DeputadoQuery struct {
	// Nome filters by (partial) name.
	Nome string
	// UF filters by state abbreviation.
	UF string
	// Partido filters by party abbreviation.
	Partido string
	// Limit caps the result size. Zero means the service default.
	Limit int
}

// ExpenseQuery narrows an expense listing.
type ExpenseQuery struct {
	Ano   int
	Mes   int
	Limit int
	Page  int
}
