package handlers

import (
	"fmt"
	"net/http"
)

// Pages serves the marketing site for Dashboard Médic Pro. The pages are
// static HTML rendered straight from handler constants; the demo application
// itself talks to the JSON API.
type Pages struct{}

// NewPages creates the marketing pages handler.
func NewPages() *Pages {
	return &Pages{}
}

func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	p.render(w, "Dashboard Médic Pro", homeHTML)
}

func (p *Pages) Features(w http.ResponseWriter, r *http.Request) {
	p.render(w, "Fonctionnalités — Dashboard Médic Pro", featuresHTML)
}

func (p *Pages) Pricing(w http.ResponseWriter, r *http.Request) {
	p.render(w, "Tarifs — Dashboard Médic Pro", pricingHTML)
}

func (p *Pages) About(w http.ResponseWriter, r *http.Request) {
	p.render(w, "À propos — Dashboard Médic Pro", aboutHTML)
}

func (p *Pages) Contact(w http.ResponseWriter, r *http.Request) {
	p.render(w, "Contact — Dashboard Médic Pro", contactHTML)
}

func (p *Pages) render(w http.ResponseWriter, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, pageLayout, title, body)
}

const pageLayout = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    :root {
      --primary: #0A5FFF;
      --text: #0f172a;
      --text-muted: #64748b;
      --border: #e2e8f0;
      --bg: #f8fafc;
      --white: #ffffff;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
      background: var(--bg);
      color: var(--text);
      line-height: 1.6;
    }
    nav {
      background: var(--white);
      border-bottom: 1px solid var(--border);
      padding: 16px 32px;
      display: flex;
      align-items: center;
      gap: 24px;
    }
    nav .brand { font-weight: 800; color: var(--primary); }
    nav a { color: var(--text-muted); text-decoration: none; font-size: 15px; }
    nav a:hover { color: var(--primary); }
    main { max-width: 960px; margin: 0 auto; padding: 48px 24px; }
    h1 { font-size: 36px; margin-bottom: 16px; }
    h2 { font-size: 22px; margin: 32px 0 8px; }
    p { color: var(--text-muted); margin-bottom: 12px; }
    .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 20px; margin-top: 32px; }
    .card {
      background: var(--white);
      border: 1px solid var(--border);
      border-radius: 12px;
      padding: 24px;
    }
    .card h3 { margin-bottom: 8px; }
    .price { font-size: 34px; font-weight: 800; }
    .price small { font-size: 14px; color: var(--text-muted); font-weight: 400; }
    .cta {
      display: inline-block;
      margin-top: 24px;
      background: var(--primary);
      color: var(--white);
      padding: 14px 28px;
      border-radius: 10px;
      font-weight: 700;
      text-decoration: none;
    }
    ul { color: var(--text-muted); padding-left: 20px; }
  </style>
</head>
<body>
  <nav>
    <span class="brand">Dashboard Médic Pro</span>
    <a href="/">Accueil</a>
    <a href="/features">Fonctionnalités</a>
    <a href="/pricing">Tarifs</a>
    <a href="/about">À propos</a>
    <a href="/contact">Contact</a>
  </nav>
  <main>
%s
  </main>
</body>
</html>
`

const homeHTML = `    <h1>Gérez tout votre cabinet</h1>
    <p>Le tableau de bord intelligent des cabinets médicaux algériens. Créez votre
    espace de gestion personnalisé en quelques secondes, piloté par l'IA.</p>
    <div class="cards">
      <div class="card"><h3>1. Créez votre espace</h3><p>Entrez le nom de votre cabinet et votre spécialité.</p></div>
      <div class="card"><h3>2. Gérez vos patients</h3><p>Ajoutez des dossiers, suivez les historiques et notez les observations.</p></div>
      <div class="card"><h3>3. Pilotez avec l'IA</h3><p>Visualisez vos revenus en Dinars et optimisez votre planning.</p></div>
    </div>
    <h2>Pourquoi choisir Dashboard Médic Pro ?</h2>
    <ul>
      <li>Adapté à l'Algérie : devises en Dinars, format de téléphone local, noms algériens.</li>
      <li>Gestion patients simple : ajoutez, modifiez et supprimez des patients en quelques clics.</li>
      <li>Sécurité maximale : vos données sont protégées. Aucune installation requise.</li>
      <li>Agenda intelligent : gérez vos rendez-vous et réduisez les absences.</li>
    </ul>
    <a class="cta" href="/contact">Prêt à moderniser votre cabinet ?</a>`

const featuresHTML = `    <h1>Tout ce dont vous avez besoin pour piloter votre cabinet</h1>
    <div class="cards">
      <div class="card"><h3>Intelligence Artificielle</h3><p>Notre moteur IA analyse vos données brutes et génère automatiquement les indicateurs les plus pertinents pour votre spécialité, sans configuration complexe.</p></div>
      <div class="card"><h3>Visualisation Interactive</h3><p>Interagissez avec vos données. Zoomez sur une période, filtrez par type de consultation et comparez vos performances d'une année sur l'autre.</p></div>
      <div class="card"><h3>Rapports Automatisés</h3><p>Recevez chaque lundi matin un rapport PDF synthétique de votre activité directement dans votre boîte mail.</p></div>
      <div class="card"><h3>Sécurité HDS</h3><p>Vos données sont chiffrées de bout en bout et hébergées sur des serveurs certifiés Hébergeur de Données de Santé.</p></div>
      <div class="card"><h3>Multi-Praticiens</h3><p>Gérez un cabinet de groupe facilement. Chaque médecin a sa vue propre, et les associés ont une vue consolidée.</p></div>
      <div class="card"><h3>100% Mobile</h3><p>Consultez vos chiffres entre deux consultations ou depuis chez vous, sur smartphone comme sur tablette.</p></div>
    </div>`

const pricingHTML = `    <h1>Tarifs adaptés à l'Algérie</h1>
    <p>Sans engagement. Paiement en Dinars, CCP ou carte EDAHABIA.</p>
    <div class="cards">
      <div class="card">
        <h3>Débutant</h3>
        <div class="price">3 500 <small>DA/mois</small></div>
        <ul><li>1 praticien</li><li>Gestion des patients</li><li>Agenda simple</li></ul>
      </div>
      <div class="card">
        <h3>Pro</h3>
        <div class="price">6 500 <small>DA/mois</small></div>
        <ul><li>Jusqu'à 3 praticiens</li><li>Tableau de bord IA</li><li>Rapports hebdomadaires</li></ul>
      </div>
      <div class="card">
        <h3>Clinique</h3>
        <div class="price">12 000 <small>DA/mois</small></div>
        <ul><li>Praticiens illimités</li><li>Vue consolidée multi-cabinets</li><li>Support prioritaire</li></ul>
      </div>
    </div>`

const aboutHTML = `    <h1>Notre Mission</h1>
    <h2>Simplifier la vie des soignants</h2>
    <p>Dashboard Médic Pro est né d'un constat simple : les médecins passent trop
    de temps sur l'administratif et pas assez avec leurs patients. Nous construisons
    des outils de gestion pensés pour les cabinets algériens, du généraliste de
    quartier à la clinique multispécialités.</p>`

const contactHTML = `    <h1>Contactez-nous</h1>
    <p>Une question, une démonstration ? Écrivez-nous via le formulaire de l'application
    ou directement à l'adresse ci-dessous.</p>
    <div class="card">
      <p>Email : contact@medicpro.dz</p>
      <p>Téléphone : 021 00 00 00</p>
      <p>Adresse : Hydra, Alger, Algérie</p>
    </div>`
